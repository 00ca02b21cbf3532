package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/job"
)

type jobResponse struct {
	ID          uuid.UUID  `json:"id"`
	ContractID  uuid.UUID  `json:"contractId"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Paid        *bool      `json:"paid"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(j *job.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		ContractID:  j.ContractID,
		Description: j.Description,
		Price:       j.Price,
		Paid:        j.Paid,
		PaidAt:      j.PaidAt,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func toResponseList(jobs []*job.Job) []jobResponse {
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toResponse(j)
	}

	return resp
}
