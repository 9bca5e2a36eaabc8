package main

import (
	"context"
	"fmt"

	"peerweb/trader-api/internal/domain/trader"
	"peerweb/trader-api/internal/infrastructure/logger"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// DataInitializer seeds the trader directory on first boot.
type DataInitializer struct {
	traderRepo trader.Repository
}

// seedTrader is one bootstrap entry for the trader directory.
type seedTrader struct {
	name            string
	signal          int
	dossier         trader.Dossier
	mockRating      int
	mockExplanation string
}

var seedTraders = []seedTrader{
	{
		name:   "TRADER_ZERO",
		signal: 98,
		dossier: trader.Dossier{
			TransactionHistory: "Frequent, small-value trades. High completion rate of 99%. No disputes filed in the last 180 days.",
			NetworkActivity:    "Stable connection, low latency. Actively participates in network routing. Online during standard cycle hours.",
			CommunityReports:   "Overwhelmingly positive reports. Mentioned as a 'fair and reliable trader' multiple times across different network nodes.",
		},
		mockRating:      95,
		mockExplanation: "Highly reliable trader with excellent transaction history. (Mock Data)",
	},
	{
		name:   "CYBER_NOMAD",
		signal: 76,
		dossier: trader.Dossier{
			TransactionHistory: "Mix of small and medium-value trades. 95% completion rate. No disputes.",
			NetworkActivity:    "Active daily, but occasionally drops connection. Participates in network routing.",
			CommunityReports:   "Generally good reputation for selling rare and unique components, but some mention slow transaction times.",
		},
		mockRating:      78,
		mockExplanation: "Good reputation but can be slow. (Mock Data)",
	},
	{
		name:   "GHOST_IN_THE_MACHINE",
		signal: 45,
		dossier: trader.Dossier{
			TransactionHistory: "Infrequent, but very high-value trades. Several recently cancelled transactions without explanation. One dispute filed last week, currently unresolved.",
			NetworkActivity:    "Highly unstable connection, frequent packet loss. Does not participate in network routing. Activity spikes at irregular, off-cycle hours.",
			CommunityReports:   "Mixed reports. Some praise for rare items, but multiple recent reports flag this trader for 'unreliable communication' and 'changing trade terms at the last minute'.",
		},
		mockRating:      25,
		mockExplanation: "Unreliable and risky. Proceed with caution. (Mock Data)",
	},
	{
		name:   "AGENT_SMITH",
		signal: 81,
		dossier: trader.Dossier{
			TransactionHistory: "Moderate activity, primarily trading in standard-issue gear and common resources. 98% completion rate.",
			NetworkActivity:    "Consistent and stable online presence. Standard network participation.",
			CommunityReports:   "Neutral reports. Generally seen as a no-frills, by-the-book trader. No major complaints or outstanding praise.",
		},
		mockRating:      82,
		mockExplanation: "A standard, reliable trader with no major issues. (Mock Data)",
	},
}

// Install seeds the directory if it is empty. Reruns are no-ops.
func (d *DataInitializer) Install(ctx context.Context) error {
	log := logger.GetLogger()

	count, err := d.traderRepo.Count(ctx)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count traders")
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedTraders {
		entry, err := trader.NewTrader(seed.name, seed.signal, seed.dossier, seed.mockRating, seed.mockExplanation)
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, fmt.Sprintf("build trader %q", seed.name))
		}
		if err := d.traderRepo.Create(ctx, entry); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, fmt.Sprintf("seed trader %q", seed.name))
		}
	}
	log.Info().Int("traders", len(seedTraders)).Msg("seeded trader directory")
	return nil
}
