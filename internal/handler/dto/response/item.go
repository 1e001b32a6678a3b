package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"ownerId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	Comments    []*CommentResponse `json:"comments"`
}

type BookingInfoResponse struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// OwnerItemResponse is what an item's owner sees in their listing.
type OwnerItemResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	LastBooking *BookingInfoResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingInfoResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse   `json:"comments"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	resp := ItemResponse{Comments: []*CommentResponse{}}
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	resp := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromItemView(rm)
	}
	return resp
}

func FromOwnerItemView(rm *queries.OwnerItemView) *OwnerItemResponse {
	resp := OwnerItemResponse{Comments: []*CommentResponse{}}
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromOwnerItemViews(rms []*queries.OwnerItemView) []*OwnerItemResponse {
	resp := make([]*OwnerItemResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromOwnerItemView(rm)
	}
	return resp
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
