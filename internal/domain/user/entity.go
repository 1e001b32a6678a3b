package user

import (
	"errors"
	"strings"
	"time"

	"shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBlankName    = errors.New("user name must not be blank")
	ErrBlankEmail   = errors.New("user email must not be blank")
	ErrInvalidEmail = errors.New("user email is malformed")
)

type User struct {
	id        uuid.UUID
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrBlankName
	}
	if email == "" {
		return nil, ErrBlankEmail
	}
	if !looksLikeEmail(email) {
		return nil, ErrInvalidEmail
	}

	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyPatch keeps stored values for absent or blank fields.
func (u *User) ApplyPatch(name, email *string) error {
	u.name = patch.CoalesceNonBlank(name, u.name)

	if email != nil && *email != "" {
		if !looksLikeEmail(*email) {
			return ErrInvalidEmail
		}
		u.email = *email
	}
	return nil
}

// Uniqueness is enforced at the store; this only rejects obvious garbage.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
