//go:build unit || e2e

package builder

import (
	"time"

	domuser "shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     "user@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(u.Name, u.Email)
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildUpdateRequestDTO() reqdto.UpdateUserRequest {
	name := u.Name
	email := u.Email
	return reqdto.UpdateUserRequest{
		Name:  &name,
		Email: &email,
	}
}

func (u *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithCreatedAt(createdAt time.Time) *UserBuilder {
	u.CreatedAt = createdAt
	return u
}
