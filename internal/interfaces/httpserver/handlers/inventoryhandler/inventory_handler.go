package inventoryhandler

import (
	"context"

	"peerweb/trader-api/internal/domain/inventory"
	inventoryrequests "peerweb/trader-api/internal/interfaces/httpserver/requests/inventory"
	inventoryresponses "peerweb/trader-api/internal/interfaces/httpserver/responses/inventory"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListItems returns the caller's inventory.
func (h *InventoryHandler) ListItems(ctx context.Context, ownerID string) (*inventoryresponses.ItemListResponse, error) {
	items, err := h.inventoryService.ListItems(ctx, ownerID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list items")
	}
	return inventoryresponses.NewItemListResponse(items), nil
}

// CreateItem lists a new item.
func (h *InventoryHandler) CreateItem(
	ctx context.Context,
	ownerID string,
	req inventoryrequests.CreateItemRequest,
) (*inventoryresponses.ItemResponse, error) {
	item, err := h.inventoryService.AddItem(ctx, ownerID, req.Name, req.Description)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create item")
	}
	return inventoryresponses.NewItemResponse(item), nil
}

// DeleteItem removes an item.
func (h *InventoryHandler) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	if err := h.inventoryService.DeleteItem(ctx, ownerID, itemID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete item")
	}
	return nil
}

// AddImage attaches a photo to an item.
func (h *InventoryHandler) AddImage(
	ctx context.Context,
	ownerID, itemID string,
	req inventoryrequests.AddImageRequest,
) (*inventoryresponses.ItemResponse, error) {
	item, err := h.inventoryService.AddImage(ctx, ownerID, itemID, req.PhotoDataURI)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to add image")
	}
	return inventoryresponses.NewItemResponse(item), nil
}

// GenerateDescription produces and persists a sales description.
func (h *InventoryHandler) GenerateDescription(ctx context.Context, ownerID, itemID string) (*inventoryresponses.ItemResponse, error) {
	item, err := h.inventoryService.GenerateDescription(ctx, ownerID, itemID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate description")
	}
	return inventoryresponses.NewItemResponse(item), nil
}

// IdentifyItem creates an item from a photo.
func (h *InventoryHandler) IdentifyItem(
	ctx context.Context,
	ownerID string,
	req inventoryrequests.IdentifyItemRequest,
) (*inventoryresponses.ItemResponse, error) {
	item, err := h.inventoryService.IdentifyFromImage(ctx, ownerID, req.PhotoDataURI)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to identify item")
	}
	return inventoryresponses.NewItemResponse(item), nil
}
