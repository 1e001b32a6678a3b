package request

import (
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID    uuid.UUID `json:"itemId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID:    r.ItemID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
