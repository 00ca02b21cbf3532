package job

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListUnpaid(ctx context.Context, clientID, contractorID uuid.UUID) ([]*Job, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListUnpaid returns the unpaid jobs on in-progress contracts between the
// given client and contractor.
func (s *Service) ListUnpaid(ctx context.Context, clientID, contractorID uuid.UUID) ([]*Job, error) {
	return s.repo.ListUnpaid(ctx, clientID, contractorID)
}
