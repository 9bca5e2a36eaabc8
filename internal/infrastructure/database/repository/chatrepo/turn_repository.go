package chatrepo

import (
	"context"

	"gorm.io/gorm"

	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/infrastructure/database/dbschema"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// TurnGormRepository persists chat turns in postgres. The table is
// append-only; no update or delete paths exist.
type TurnGormRepository struct {
	db *gorm.DB
}

func NewTurnGormRepository(db *gorm.DB) assistant.TurnRepository {
	return &TurnGormRepository{db: db}
}

// Append inserts the turn and backfills its row id.
func (r *TurnGormRepository) Append(ctx context.Context, turn *assistant.Turn) error {
	entity := dbschema.NewSchemaChatTurn(turn)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "append chat turn", err, "")
	}
	turn.ID = entity.ID
	return nil
}

// LoadRecent returns up to limit of the owner's newest turns, reordered
// oldest first. Ties on created_at fall back to insertion order.
func (r *TurnGormRepository) LoadRecent(ctx context.Context, ownerID string, limit int) ([]*assistant.Turn, error) {
	var entities []dbschema.ChatTurn
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "load recent chat turns", err, "")
	}
	return oldestFirst(entities), nil
}

// oldestFirst converts a newest-first result page into domain turns in
// chronological order.
func oldestFirst(entities []dbschema.ChatTurn) []*assistant.Turn {
	turns := make([]*assistant.Turn, len(entities))
	for i := range entities {
		turns[len(entities)-1-i] = entities[i].EtoD()
	}
	return turns
}
