//go:build unit || e2e

package builder

import (
	"time"

	domitem "shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	now := time.Now()
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

// Build methods
func (i *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	available := i.Available
	return domitem.NewItem(i.OwnerID, i.Name, i.Description, &available)
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
	}
}

func (i *ItemBuilder) BuildUpdateRequestDTO() reqdto.UpdateItemRequest {
	name := i.Name
	description := i.Description
	available := i.Available
	return reqdto.UpdateItemRequest{
		Name:        &name,
		Description: &description,
		Available:   &available,
	}
}

func (i *ItemBuilder) BuildViewQuery() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Comments:    []*queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildOwnerViewQuery() *queries.OwnerItemView {
	return &queries.OwnerItemView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Comments:    []*queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
	}
}

// Fluent builder methods
func (i *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	i.ID = id
	return i
}

func (i *ItemBuilder) WithOwnerID(ownerID uuid.UUID) *ItemBuilder {
	i.OwnerID = ownerID
	return i
}

func (i *ItemBuilder) WithName(name string) *ItemBuilder {
	i.Name = name
	return i
}

func (i *ItemBuilder) WithDescription(description string) *ItemBuilder {
	i.Description = description
	return i
}

func (i *ItemBuilder) AsUnavailable() *ItemBuilder {
	i.Available = false
	return i
}
