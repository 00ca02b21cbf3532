package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/profile"
)

type profileResponse struct {
	ID         uuid.UUID    `json:"id"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Profession string       `json:"profession,omitempty"`
	Balance    int64        `json:"balance"`
	Type       profile.Role `json:"type"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  *time.Time   `json:"updatedAt,omitempty"`
}

func toResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance,
		Type:       p.Role,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toResponseList(profiles []*profile.Profile) []profileResponse {
	resp := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = toResponse(p)
	}

	return resp
}
