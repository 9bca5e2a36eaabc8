package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peerweb/trader-api/internal/interfaces/httpserver/handlers/inventoryhandler"
	"peerweb/trader-api/internal/interfaces/httpserver/middlewares"
	inventoryrequests "peerweb/trader-api/internal/interfaces/httpserver/requests/inventory"
	"peerweb/trader-api/internal/interfaces/httpserver/responses"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// InventoryRoute exposes the caller's item inventory.
type InventoryRoute struct {
	inventoryHandler *inventoryhandler.InventoryHandler
}

func NewInventoryRoute(inventoryHandler *inventoryhandler.InventoryHandler) *InventoryRoute {
	return &InventoryRoute{inventoryHandler: inventoryHandler}
}

func (r *InventoryRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/inventory/items")
	group.GET("", r.GetItems)
	group.POST("", r.PostItem)
	group.POST("/identify", r.PostIdentify)
	group.DELETE("/:id", r.DeleteItem)
	group.POST("/:id/images", r.PostImage)
	group.POST("/:id/description", r.PostDescription)
}

// GetItems godoc
// @Summary List inventory items
// @Tags Inventory API
// @Produce json
// @Success 200 {object} inventoryresponses.ItemListResponse
// @Security BearerAuth
// @Router /v1/inventory/items [get]
func (r *InventoryRoute) GetItems(c *gin.Context) {
	ownerID := r.ownerID(c)
	resp, err := r.inventoryHandler.ListItems(c.Request.Context(), ownerID)
	if err != nil {
		responses.HandleError(c, err, "failed to list items")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostItem godoc
// @Summary Create an inventory item
// @Tags Inventory API
// @Accept json
// @Produce json
// @Param request body inventoryrequests.CreateItemRequest true "Item to create"
// @Success 201 {object} inventoryresponses.ItemResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/inventory/items [post]
func (r *InventoryRoute) PostItem(c *gin.Context) {
	var req inventoryrequests.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid item request", "")
		return
	}

	resp, err := r.inventoryHandler.CreateItem(c.Request.Context(), r.ownerID(c), req)
	if err != nil {
		responses.HandleError(c, err, "failed to create item")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PostIdentify godoc
// @Summary Identify an item from a photo
// @Description Names and describes the pictured object and creates an inventory item with the photo attached.
// @Tags Inventory API
// @Accept json
// @Produce json
// @Param request body inventoryrequests.IdentifyItemRequest true "Photo to identify"
// @Success 201 {object} inventoryresponses.ItemResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/inventory/items/identify [post]
func (r *InventoryRoute) PostIdentify(c *gin.Context) {
	var req inventoryrequests.IdentifyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid identify request", "")
		return
	}

	resp, err := r.inventoryHandler.IdentifyItem(c.Request.Context(), r.ownerID(c), req)
	if err != nil {
		responses.HandleError(c, err, "failed to identify item")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteItem godoc
// @Summary Delete an inventory item
// @Tags Inventory API
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/inventory/items/{id} [delete]
func (r *InventoryRoute) DeleteItem(c *gin.Context) {
	if err := r.inventoryHandler.DeleteItem(c.Request.Context(), r.ownerID(c), c.Param("id")); err != nil {
		responses.HandleError(c, err, "failed to delete item")
		return
	}
	c.Status(http.StatusNoContent)
}

// PostImage godoc
// @Summary Attach a photo to an item
// @Tags Inventory API
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body inventoryrequests.AddImageRequest true "Photo to attach"
// @Success 200 {object} inventoryresponses.ItemResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/inventory/items/{id}/images [post]
func (r *InventoryRoute) PostImage(c *gin.Context) {
	var req inventoryrequests.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid image request", "")
		return
	}

	resp, err := r.inventoryHandler.AddImage(c.Request.Context(), r.ownerID(c), c.Param("id"), req)
	if err != nil {
		responses.HandleError(c, err, "failed to add image")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostDescription godoc
// @Summary Generate a sales description for an item
// @Tags Inventory API
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} inventoryresponses.ItemResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/inventory/items/{id}/description [post]
func (r *InventoryRoute) PostDescription(c *gin.Context) {
	resp, err := r.inventoryHandler.GenerateDescription(c.Request.Context(), r.ownerID(c), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to generate description")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (r *InventoryRoute) ownerID(c *gin.Context) string {
	principal, _ := middlewares.PrincipalFromContext(c)
	return principal.ID
}
