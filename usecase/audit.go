package usecase

import (
	"context"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
	"yt-companion/infrastructure/logger"
)

// appendAudit writes an event after the operation it describes has
// completed. Best-effort: a failed append loses the event, never the
// operation's effect.
func appendAudit(ctx context.Context, audit repository.IAuditLog, action, details string) {
	if err := audit.Append(ctx, action, details); err != nil {
		logger.GetLogger().WithField("error", err).WithField("action", action).Warn("Failed to append audit event")
	}
}

// ILogUsecase serves the audit log read endpoint.
type ILogUsecase interface {
	Recent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type LogUsecase struct {
	audit repository.IAuditLog
}

func NewLogUsecase(audit repository.IAuditLog) ILogUsecase {
	return &LogUsecase{audit: audit}
}

func (u *LogUsecase) Recent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	events, err := u.audit.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.AuditEvent{}
	}
	return events, nil
}
