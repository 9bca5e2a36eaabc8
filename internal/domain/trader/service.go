package trader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Model is the slice of the model provider trust evaluation uses.
type Model interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	Configured() bool
}

// failureExplanation is served with a zero rating when the model call or
// its output parsing fails.
const failureExplanation = "The trust oracle flatlined mid-scan. No rating available for this trader right now."

// TrustReport is the outcome of a trust evaluation.
type TrustReport struct {
	TraderName  string `json:"trader_name"`
	Rating      int    `json:"rating"`
	Explanation string `json:"explanation"`
}

// Service serves the trader directory and model-backed trust ratings.
type Service struct {
	repo  Repository
	model Model
	log   zerolog.Logger
}

func NewService(repo Repository, model Model, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		model: model,
		log:   log.With().Str("component", "trader-service").Logger(),
	}
}

// ListTraders returns the full directory.
func (s *Service) ListTraders(ctx context.Context) ([]*Trader, error) {
	return s.repo.FindAll(ctx)
}

// TrustRating evaluates a trader's trustworthiness from their dossier.
// An unconfigured model serves the stored mock rating; a failed model
// call degrades to a zero-score report instead of an error.
func (s *Service) TrustRating(ctx context.Context, name string) (*TrustReport, error) {
	trader, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !s.model.Configured() {
		return &TrustReport{
			TraderName:  trader.Name,
			Rating:      trader.MockRating,
			Explanation: trader.MockExplanation,
		}, nil
	}

	raw, err := s.model.GenerateText(ctx, trustSystemPrompt, trustPrompt(trader))
	if err != nil {
		s.log.Warn().Err(err).Str("trader", trader.Name).Msg("trust rating generation failed")
		return &TrustReport{TraderName: trader.Name, Rating: 0, Explanation: failureExplanation}, nil
	}

	var parsed struct {
		Rating      int    `json:"rating"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil || parsed.Explanation == "" {
		s.log.Warn().Str("trader", trader.Name).Str("raw", raw).Msg("trust rating output malformed")
		return &TrustReport{TraderName: trader.Name, Rating: 0, Explanation: failureExplanation}, nil
	}
	if parsed.Rating < 0 {
		parsed.Rating = 0
	}
	if parsed.Rating > 100 {
		parsed.Rating = 100
	}

	return &TrustReport{TraderName: trader.Name, Rating: parsed.Rating, Explanation: parsed.Explanation}, nil
}

const trustSystemPrompt = `You are a trust analyst for a retro-futuristic peer-to-peer trading grid. You rate traders from 0 (do not trade) to 100 (fully trusted) based on their dossier. Respond with strict JSON only, no prose: {"rating": <integer 0-100>, "explanation": "<two to three sentence justification, cyberpunk flavor>"}`

func trustPrompt(t *Trader) string {
	return fmt.Sprintf(`Evaluate trader %q.

Transaction history: %s
Network activity: %s
Community reports: %s`,
		t.Name,
		t.Dossier.TransactionHistory,
		t.Dossier.NetworkActivity,
		t.Dossier.CommunityReports,
	)
}

func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
