package inventory

import (
	"context"
	"time"

	"peerweb/trader-api/internal/utils/idgen"
)

// MaxImages caps the photos attached to a single item.
const MaxImages = 3

// Item is one entry in a user's trading inventory.
type Item struct {
	ID          uint      `json:"-"`
	PublicID    string    `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates an item with a fresh public id.
func NewItem(ownerID, name, description string, images []string) (*Item, error) {
	publicID, err := idgen.GenerateSecureID("item", 16)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Item{
		PublicID:    publicID,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Repository persists inventory items. Lookups are always owner-scoped.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, ownerID, publicID string) error
	FindByOwner(ctx context.Context, ownerID string) ([]*Item, error)
	FindByPublicID(ctx context.Context, ownerID, publicID string) (*Item, error)
}
