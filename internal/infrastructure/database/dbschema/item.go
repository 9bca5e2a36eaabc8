package dbschema

import (
	"gorm.io/datatypes"

	"peerweb/trader-api/internal/domain/inventory"
	"peerweb/trader-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(InventoryItem{})
}

// InventoryItem represents the database schema for inventory items
type InventoryItem struct {
	BaseModel
	PublicID    string                      `gorm:"type:varchar(50);uniqueIndex;not null"`
	OwnerID     string                      `gorm:"type:varchar(128);index;not null"`
	Name        string                      `gorm:"type:varchar(256);not null"`
	Description string                      `gorm:"type:text"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

// NewSchemaInventoryItem creates a database schema from a domain item
func NewSchemaInventoryItem(item *inventory.Item) *InventoryItem {
	return &InventoryItem{
		BaseModel: BaseModel{
			ID:        item.ID,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		},
		PublicID:    item.PublicID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Images:      datatypes.NewJSONSlice(item.Images),
	}
}

// EtoD converts database schema to domain item (Entity to Domain)
func (i *InventoryItem) EtoD() *inventory.Item {
	return &inventory.Item{
		ID:          i.ID,
		PublicID:    i.PublicID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Images:      []string(i.Images),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
