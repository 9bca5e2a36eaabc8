package dbschema

import (
	"database/sql/driver"
	"encoding/json"

	"peerweb/trader-api/internal/domain/trader"
	"peerweb/trader-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Trader{})
}

// Trader represents the database schema for the trader directory
type Trader struct {
	BaseModel
	PublicID        string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name            string      `gorm:"type:varchar(128);uniqueIndex;not null"`
	Signal          int         `gorm:"not null;default:0"`
	Dossier         JSONDossier `gorm:"type:jsonb"`
	MockRating      int         `gorm:"not null;default:0"`
	MockExplanation string      `gorm:"type:text"`
}

// JSONDossier is a custom type for trader.Dossier stored as JSON
type JSONDossier trader.Dossier

func (j JSONDossier) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONDossier) Scan(value any) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// NewSchemaTrader creates a database schema from a domain trader
func NewSchemaTrader(t *trader.Trader) *Trader {
	return &Trader{
		BaseModel: BaseModel{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
		},
		PublicID:        t.PublicID,
		Name:            t.Name,
		Signal:          t.Signal,
		Dossier:         JSONDossier(t.Dossier),
		MockRating:      t.MockRating,
		MockExplanation: t.MockExplanation,
	}
}

// EtoD converts database schema to domain trader (Entity to Domain)
func (t *Trader) EtoD() *trader.Trader {
	return &trader.Trader{
		ID:              t.ID,
		PublicID:        t.PublicID,
		Name:            t.Name,
		Signal:          t.Signal,
		Dossier:         trader.Dossier(t.Dossier),
		MockRating:      t.MockRating,
		MockExplanation: t.MockExplanation,
		CreatedAt:       t.CreatedAt,
	}
}
