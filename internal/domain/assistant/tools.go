package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"peerweb/trader-api/internal/domain/inventory"
)

// InventoryReader is the read-only slice of the inventory service the
// tools need.
type InventoryReader interface {
	ListItems(ctx context.Context, ownerID string) ([]*inventory.Item, error)
}

// ---- listInventoryItems ----

type listInventoryItemsArgs struct{}

type inventoryItemSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListInventoryItemsTool returns the caller's items reduced to id and name.
type ListInventoryItemsTool struct {
	inventory InventoryReader
}

func NewListInventoryItemsTool(inv InventoryReader) *ListInventoryItemsTool {
	return &ListInventoryItemsTool{inventory: inv}
}

func (t *ListInventoryItemsTool) Name() string { return "listInventoryItems" }

func (t *ListInventoryItemsTool) Description() string {
	return "List the current user's inventory items. Returns each item's id and name."
}

func (t *ListInventoryItemsTool) Parameters() *jsonschema.Schema {
	return reflectSchema(&listInventoryItemsArgs{})
}

func (t *ListInventoryItemsTool) Execute(ctx context.Context, _ json.RawMessage, caller Identity) (json.RawMessage, error) {
	if caller.ID == "" {
		return nil, ErrUnauthenticated
	}

	items, err := t.inventory.ListItems(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	summaries := make([]inventoryItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, inventoryItemSummary{ID: item.PublicID, Name: item.Name})
	}
	return json.Marshal(map[string]any{"items": summaries})
}

// ---- getItemDetails ----

type getItemDetailsArgs struct {
	ItemName string `json:"itemName" jsonschema:"required,description=Exact name of the item to look up (case-insensitive)"`
}

// GetItemDetailsTool resolves one of the caller's items by name.
type GetItemDetailsTool struct {
	inventory InventoryReader
}

func NewGetItemDetailsTool(inv InventoryReader) *GetItemDetailsTool {
	return &GetItemDetailsTool{inventory: inv}
}

func (t *GetItemDetailsTool) Name() string { return "getItemDetails" }

func (t *GetItemDetailsTool) Description() string {
	return "Get the full details of one of the current user's items by its exact name. Matching is case-insensitive."
}

func (t *GetItemDetailsTool) Parameters() *jsonschema.Schema {
	return reflectSchema(&getItemDetailsArgs{})
}

func (t *GetItemDetailsTool) Execute(ctx context.Context, args json.RawMessage, caller Identity) (json.RawMessage, error) {
	if caller.ID == "" {
		return nil, ErrUnauthenticated
	}

	var parsed getItemDetailsArgs
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	if strings.TrimSpace(parsed.ItemName) == "" {
		return nil, fmt.Errorf("itemName is required")
	}

	items, err := t.inventory.ListItems(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	for _, item := range items {
		if strings.EqualFold(item.Name, parsed.ItemName) {
			return json.Marshal(map[string]any{
				"found": true,
				"item": map[string]any{
					"id":          item.PublicID,
					"name":        item.Name,
					"description": item.Description,
					"imageCount":  len(item.Images),
				},
			})
		}
	}

	// Absence is a result the model should relay, not an error.
	return json.Marshal(map[string]any{
		"found":   false,
		"message": fmt.Sprintf("no item named %q in the inventory", parsed.ItemName),
	})
}
