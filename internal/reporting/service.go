package reporting

import (
	"context"
	"slices"
	"time"
)

// DefaultClientLimit is how many top clients a report returns when the
// caller does not ask for a specific count.
const DefaultClientLimit = 2

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reporting
type Repository interface {
	// TopProfession aggregates paid jobs in [start, end] by the contractor's
	// profession and returns the highest-earning one. Ties go to the
	// lexicographically smaller profession. ErrNoData when nothing matched.
	TopProfession(ctx context.Context, start, end time.Time) (*ProfessionEarnings, error)

	// TopClients aggregates paid jobs in [start, end] by client and returns
	// the top limit spenders, descending. Ties break ascending by id.
	TopClients(ctx context.Context, start, end time.Time, limit int) ([]*ClientTotal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) BestProfession(ctx context.Context, start, end time.Time) (*ProfessionEarnings, error) {
	return s.repo.TopProfession(ctx, start, end)
}

// BestClients returns the top-limit paying clients over the window, ordered
// ascending by amount paid. The ranking is computed descending and reversed
// before returning; callers rely on that ordering.
func (s *Service) BestClients(ctx context.Context, start, end time.Time, limit int) ([]*ClientTotal, error) {
	if limit <= 0 {
		limit = DefaultClientLimit
	}

	clients, err := s.repo.TopClients(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}

	slices.Reverse(clients)

	return clients, nil
}
