package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/infrastructure/inference"
	"peerweb/trader-api/internal/infrastructure/logger"
	"peerweb/trader-api/internal/infrastructure/metrics"
	"peerweb/trader-api/internal/utils/platformerrors"
)

const (
	CronJobTimeout = time.Minute // Timeout for each probe run
)

// Crontab runs the background model health probe. The probe keeps the
// model_health gauge current so dashboards notice a dead uplink before
// users do.
type Crontab struct {
	ctab   *crontab.Crontab
	client *inference.Client
}

func NewCrontab(client *inference.Client) *Crontab {
	return &Crontab{
		ctab:   crontab.New(),
		client: client,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	// probe once on server start
	c.probeModel(ctx)

	cfg := config.GetGlobal()
	if cfg != nil && cfg.ModelProbeEnabled {
		if err := c.ctab.AddJob(cfg.ModelProbeSchedule, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.probeModel(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add model probe job")
		}
		log.Info().Str("schedule", cfg.ModelProbeSchedule).Msg("model health probe scheduled")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) probeModel(ctx context.Context) {
	log := logger.GetLogger()

	if !c.client.Configured() {
		metrics.SetModelHealth(false)
		return
	}

	if err := c.client.Ping(ctx); err != nil {
		metrics.SetModelHealth(false)
		log.Warn().Err(err).Msg("model health probe failed")
		return
	}
	metrics.SetModelHealth(true)
}
