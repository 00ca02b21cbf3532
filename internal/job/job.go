package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	StatusNew        ContractStatus = "new"
	StatusInProgress ContractStatus = "in_progress"
	StatusTerminated ContractStatus = "terminated"
)

var (
	ErrNotFound         = errors.New("job not found")
	ErrContractNotFound = errors.New("contract not found")
)

// Contract links exactly one client to one contractor.
type Contract struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ContractorID uuid.UUID
	Terms        string
	Status       ContractStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Job is a billable unit of work under a contract. Price is in cents. The
// paid flag starts out unset and is flipped to true at most once, by the
// payment engine.
type Job struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Description string
	Price       int64
	Paid        *bool
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// IsPaid treats the unset flag as unpaid.
func (j *Job) IsPaid() bool {
	return j.Paid != nil && *j.Paid
}
