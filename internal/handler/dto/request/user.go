package request

import (
	"shareit/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}

// UpdateUserRequest is a partial patch: absent fields keep stored values.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}
