package inventory

// CreateItemRequest creates a manually-listed item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddImageRequest attaches a photo (as a data URI) to an item.
type AddImageRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required"`
}

// IdentifyItemRequest creates an item from a photo alone.
type IdentifyItemRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required"`
}
