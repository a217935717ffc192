package request

type ToggleMaintenanceRequest struct {
	Enabled *bool  `json:"enabled" binding:"required"`
	Secret  string `json:"secret" binding:"required"`
}

type MaintenanceWebhookRequest struct {
	Enabled *bool  `json:"enabled" binding:"required"`
	Message string `json:"message" binding:"max=500"`
}
