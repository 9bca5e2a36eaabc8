package traderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"peerweb/trader-api/internal/domain/trader"
	"peerweb/trader-api/internal/infrastructure/database/dbschema"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// TraderGormRepository persists the trader directory in postgres.
type TraderGormRepository struct {
	db *gorm.DB
}

func NewTraderGormRepository(db *gorm.DB) trader.Repository {
	return &TraderGormRepository{db: db}
}

func (r *TraderGormRepository) Create(ctx context.Context, t *trader.Trader) error {
	entity := dbschema.NewSchemaTrader(t)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "create trader", err, "")
	}
	t.ID = entity.ID
	return nil
}

func (r *TraderGormRepository) FindByName(ctx context.Context, name string) (*trader.Trader, error) {
	var entity dbschema.Trader
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "trader not found", err, "")
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "find trader", err, "")
	}
	return entity.EtoD(), nil
}

func (r *TraderGormRepository) FindAll(ctx context.Context) ([]*trader.Trader, error) {
	var entities []dbschema.Trader
	err := r.db.WithContext(ctx).
		Order("signal DESC").
		Find(&entities).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "list traders", err, "")
	}

	traders := make([]*trader.Trader, len(entities))
	for i := range entities {
		traders[i] = entities[i].EtoD()
	}
	return traders, nil
}

func (r *TraderGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbschema.Trader{}).Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "count traders", err, "")
	}
	return count, nil
}
