package maintenance

import (
	"context"
	"log/slog"

	"allure-rental/internal/pkg/clock"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/pkg/secret"
)

var (
	ErrUnauthorized  = errs.New("maintenance change not authorized")
	ErrNotConfigured = errs.New("maintenance control not configured")
)

type Service interface {
	Status() Status
	// Toggle is the admin form: the caller proves it knows the shared secret.
	Toggle(ctx context.Context, enabled bool, plainSecret string) (Status, error)
	// ApplyWebhook is called by the dashboard with a signed bearer token.
	ApplyWebhook(ctx context.Context, token string, enabled bool, message string) (Status, error)
}

type serviceImpl struct {
	sw         *Switch
	secretHash string
	tokens     TokenValidator
	clock      clock.Clock
}

func NewService(sw *Switch, secretHash string, tokens TokenValidator, clk clock.Clock) Service {
	return &serviceImpl{sw: sw, secretHash: secretHash, tokens: tokens, clock: clk}
}

func (s *serviceImpl) Status() Status {
	return s.sw.Status()
}

func (s *serviceImpl) Toggle(ctx context.Context, enabled bool, plainSecret string) (Status, error) {
	if err := secret.Compare(s.secretHash, plainSecret); err != nil {
		if errs.Is(err, secret.ErrNotConfigured) {
			return Status{}, errs.Mark(err, ErrNotConfigured)
		}
		slog.WarnContext(ctx, "rejected maintenance toggle", "error", err.Error())
		return Status{}, errs.Mark(err, ErrUnauthorized)
	}

	st := s.sw.Set(enabled, "", s.clock.Now())
	slog.InfoContext(ctx, "maintenance mode changed", "enabled", st.Enabled, "via", "admin")
	return st, nil
}

func (s *serviceImpl) ApplyWebhook(ctx context.Context, token string, enabled bool, message string) (Status, error) {
	issuer, err := s.tokens.ValidateToken(token)
	if err != nil {
		slog.WarnContext(ctx, "rejected maintenance webhook", "error", err.Error())
		return Status{}, errs.Mark(err, ErrUnauthorized)
	}

	st := s.sw.Set(enabled, message, s.clock.Now())
	slog.InfoContext(ctx, "maintenance mode changed", "enabled", st.Enabled, "via", "webhook", "issuer", issuer)
	return st, nil
}
