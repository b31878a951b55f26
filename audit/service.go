// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogActivity(ctx context.Context, log ActivityLog) error
	QueryLogs(ctx context.Context, from, to time.Time, actorID, entityType string) ([]ActivityLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogActivity(ctx context.Context, log ActivityLog) error {
	return s.repo.LogActivity(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, actorID, entityType string) ([]ActivityLog, error) {
	return s.repo.QueryLogs(ctx, from, to, actorID, entityType)
}
