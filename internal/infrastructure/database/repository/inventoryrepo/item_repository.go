package inventoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"peerweb/trader-api/internal/domain/inventory"
	"peerweb/trader-api/internal/infrastructure/database/dbschema"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// ItemGormRepository persists inventory items in postgres.
type ItemGormRepository struct {
	db *gorm.DB
}

func NewItemGormRepository(db *gorm.DB) inventory.Repository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) Create(ctx context.Context, item *inventory.Item) error {
	entity := dbschema.NewSchemaInventoryItem(item)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "create inventory item", err, "")
	}
	item.ID = entity.ID
	return nil
}

func (r *ItemGormRepository) Update(ctx context.Context, item *inventory.Item) error {
	entity := dbschema.NewSchemaInventoryItem(item)
	result := r.db.WithContext(ctx).
		Model(&dbschema.InventoryItem{}).
		Where("public_id = ? AND owner_id = ?", item.PublicID, item.OwnerID).
		Updates(map[string]any{
			"name":        entity.Name,
			"description": entity.Description,
			"images":      entity.Images,
		})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "update inventory item", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "inventory item not found", nil, "")
	}
	return nil
}

func (r *ItemGormRepository) Delete(ctx context.Context, ownerID, publicID string) error {
	result := r.db.WithContext(ctx).
		Where("public_id = ? AND owner_id = ?", publicID, ownerID).
		Delete(&dbschema.InventoryItem{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "delete inventory item", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "inventory item not found", nil, "")
	}
	return nil
}

func (r *ItemGormRepository) FindByOwner(ctx context.Context, ownerID string) ([]*inventory.Item, error) {
	var entities []dbschema.InventoryItem
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&entities).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "list inventory items", err, "")
	}

	items := make([]*inventory.Item, len(entities))
	for i := range entities {
		items[i] = entities[i].EtoD()
	}
	return items, nil
}

func (r *ItemGormRepository) FindByPublicID(ctx context.Context, ownerID, publicID string) (*inventory.Item, error) {
	var entity dbschema.InventoryItem
	err := r.db.WithContext(ctx).
		Where("public_id = ? AND owner_id = ?", publicID, ownerID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "inventory item not found", err, "")
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "find inventory item", err, "")
	}
	return entity.EtoD(), nil
}
