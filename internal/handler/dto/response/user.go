package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	resp := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromUserView(rm)
	}
	return resp
}
