package sms

import (
	"context"
	"log/slog"

	"github.com/heirs-lab/prince/pkg/utils/logging"
)

// Service delivers SMS messages to customers.
type Service interface {
	Send(ctx context.Context, phone, message string) error
}

// stub logs outgoing messages instead of delivering them. Used until a
// real SMS gateway is wired in.
type stub struct{}

// NewStub creates an SMS service that only logs messages
func NewStub() Service {
	return &stub{}
}

func (s *stub) Send(ctx context.Context, phone, message string) error {
	logging.From(ctx).Info("SMS sent (stub)",
		slog.String("Phone", phone),
		slog.String("message", message),
	)
	return nil
}
