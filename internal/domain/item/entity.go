package item

import (
	"errors"
	"strings"
	"time"

	"shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBlankName        = errors.New("item name must not be blank")
	ErrBlankDescription = errors.New("item description must not be blank")
	ErrNoAvailability   = errors.New("item availability must be set")
)

// Item is something an owner shares. Availability is a static flag set by
// the owner, not derived from existing bookings.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available *bool) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	if available == nil {
		return nil, ErrNoAvailability
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        strings.TrimSpace(name),
		description: description,
		available:   *available,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ApplyPatch overwrites only the fields the caller supplied. A blank name
// is treated as absent, matching the original update semantics.
func (i *Item) ApplyPatch(name, description *string, available *bool) {
	i.name = patch.CoalesceNonBlank(name, i.name)
	i.description = patch.Coalesce(description, i.description)
	i.available = patch.Coalesce(available, i.available)
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Available() bool      { return i.available }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
