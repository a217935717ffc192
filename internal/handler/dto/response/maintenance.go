package response

import (
	"time"

	"allure-rental/internal/usecase/maintenance"
)

type MaintenanceResponse struct {
	Enabled   bool   `json:"maintenance"`
	Message   string `json:"message,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func FromMaintenanceStatus(s maintenance.Status) *MaintenanceResponse {
	res := &MaintenanceResponse{Enabled: s.Enabled, Message: s.Message}
	if !s.UpdatedAt.IsZero() {
		res.UpdatedAt = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return res
}
