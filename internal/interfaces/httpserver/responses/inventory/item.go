package inventory

import (
	"time"

	domaininventory "peerweb/trader-api/internal/domain/inventory"
	"peerweb/trader-api/internal/utils/functional"
)

// ItemResponse is the wire representation of an inventory item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse wraps a list of items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

func NewItemResponse(item *domaininventory.Item) *ItemResponse {
	images := item.Images
	if images == nil {
		images = []string{}
	}
	return &ItemResponse{
		ID:          item.PublicID,
		Name:        item.Name,
		Description: item.Description,
		Images:      images,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func NewItemListResponse(items []*domaininventory.Item) *ItemListResponse {
	return &ItemListResponse{
		Items: functional.Map(items, func(item *domaininventory.Item) ItemResponse {
			return *NewItemResponse(item)
		}),
	}
}
