package repository

import (
	"context"

	"yt-companion/domain/model"
)

// IAuditLog is an append-only event log. Events are written after the
// operation they describe has completed and are never updated.
type IAuditLog interface {
	Append(ctx context.Context, action, details string) error
	Recent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}
