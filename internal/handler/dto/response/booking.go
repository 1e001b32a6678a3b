package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookedItemResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type BookingResponse struct {
	ID        uuid.UUID          `json:"id"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    string             `json:"status"`
	Booker    BookerResponse     `json:"booker"`
	Item      BookedItemResponse `json:"item"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        rm.ID,
		StartDate: rm.StartDate,
		EndDate:   rm.EndDate,
		Status:    rm.Status,
		Booker: BookerResponse{
			ID:   rm.Booker.ID,
			Name: rm.Booker.Name,
		},
		Item: BookedItemResponse{
			ID:      rm.Item.ID,
			Name:    rm.Item.Name,
			OwnerID: rm.Item.OwnerID,
		},
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromBookingView(rm)
	}
	return resp
}
