package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the paying side of a contract from the earning side.
type Role string

const (
	RoleClient     Role = "client"
	RoleContractor Role = "contractor"
)

var ErrNotFound = errors.New("profile not found")

// Profile represents an account on the marketplace. Balance is in cents and
// is mutated only by the payment engine.
type Profile struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Profession string
	Balance    int64
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
