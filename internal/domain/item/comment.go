package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBlankComment = errors.New("comment text must not be blank")

// Comment is feedback left on an item by a user who already finished a
// booking of it. Eligibility is checked by the usecase, not here.
type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

func NewComment(itemID, authorID uuid.UUID, text string, created time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankComment
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     strings.TrimSpace(text),
		created:  created,
	}, nil
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }
