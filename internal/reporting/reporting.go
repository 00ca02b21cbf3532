package reporting

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoData means no paid job fell inside the requested window.
var ErrNoData = errors.New("no paid jobs in range")

// ProfessionEarnings is the total earned by contractors of one profession
// over a window, in cents.
type ProfessionEarnings struct {
	Profession string
	Earned     int64
}

// ClientTotal is the total a client paid over a window, in cents.
type ClientTotal struct {
	ID       uuid.UUID
	FullName string
	Paid     int64
}
