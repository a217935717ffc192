package maintenance

import (
	"sync"
	"time"
)

const DefaultMessage = "Site en mode maintenance"

type Status struct {
	Enabled   bool
	Message   string
	UpdatedAt time.Time
}

// Switch is the process-wide maintenance flag.
type Switch struct {
	mu     sync.RWMutex
	status Status
}

func NewSwitch(enabled bool, message string, now time.Time) *Switch {
	if message == "" {
		message = DefaultMessage
	}
	return &Switch{status: Status{Enabled: enabled, Message: message, UpdatedAt: now}}
}

func (s *Switch) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Switch) Enabled() bool {
	return s.Status().Enabled
}

// Set changes the flag. An empty message keeps the current one.
func (s *Switch) Set(enabled bool, message string, now time.Time) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Enabled = enabled
	if message != "" {
		s.status.Message = message
	}
	s.status.UpdatedAt = now
	return s.status
}
