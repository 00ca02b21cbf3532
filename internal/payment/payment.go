package payment

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyPaid       = errors.New("job already paid")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// LimitError reports a deposit above the allowed ceiling. Ceiling is 25% of
// the client's outstanding unpaid-job total, in cents.
type LimitError struct {
	Ceiling int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("deposit amount exceeds the limit of %d (25%% of total of jobs to pay)", e.Ceiling)
}
