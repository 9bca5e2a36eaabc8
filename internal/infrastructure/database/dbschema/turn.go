package dbschema

import (
	"database/sql/driver"
	"encoding/json"

	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ChatTurn{})
}

// ChatTurn represents the database schema for assistant chat turns.
// Rows are append-only; the auto-increment id doubles as the ordering
// tiebreak for turns sharing a timestamp.
type ChatTurn struct {
	BaseModel
	PublicID string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	OwnerID  string    `gorm:"type:varchar(128);index:idx_chat_turn_owner_created;not null"`
	Role     string    `gorm:"type:varchar(20);not null"`
	Parts    JSONParts `gorm:"type:jsonb"`
}

// JSONParts is a custom type for []assistant.Part stored as JSON
type JSONParts []assistant.Part

func (j JSONParts) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONParts) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// NewSchemaChatTurn creates a database schema from a domain turn
func NewSchemaChatTurn(t *assistant.Turn) *ChatTurn {
	return &ChatTurn{
		BaseModel: BaseModel{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
		},
		PublicID: t.PublicID,
		OwnerID:  t.OwnerID,
		Role:     string(t.Role),
		Parts:    JSONParts(t.Parts),
	}
}

// EtoD converts database schema to domain turn (Entity to Domain)
func (t *ChatTurn) EtoD() *assistant.Turn {
	return &assistant.Turn{
		ID:        t.ID,
		PublicID:  t.PublicID,
		OwnerID:   t.OwnerID,
		Role:      assistant.TurnRole(t.Role),
		Parts:     []assistant.Part(t.Parts),
		CreatedAt: t.CreatedAt,
	}
}
