package trader

import (
	"context"
	"time"

	"peerweb/trader-api/internal/utils/idgen"
)

// Dossier is the intelligence held on a trader, fed to the model when a
// trust rating is requested.
type Dossier struct {
	TransactionHistory string `json:"transaction_history"`
	NetworkActivity    string `json:"network_activity"`
	CommunityReports   string `json:"community_reports"`
}

// Trader is one entry in the public trader directory.
type Trader struct {
	ID              uint      `json:"-"`
	PublicID        string    `json:"id"`
	Name            string    `json:"name"`
	Signal          int       `json:"signal"`
	Dossier         Dossier   `json:"-"`
	MockRating      int       `json:"-"`
	MockExplanation string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTrader creates a directory entry with a fresh public id.
func NewTrader(name string, signal int, dossier Dossier, mockRating int, mockExplanation string) (*Trader, error) {
	publicID, err := idgen.GenerateSecureID("trdr", 16)
	if err != nil {
		return nil, err
	}
	return &Trader{
		PublicID:        publicID,
		Name:            name,
		Signal:          signal,
		Dossier:         dossier,
		MockRating:      mockRating,
		MockExplanation: mockExplanation,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Repository persists the trader directory.
type Repository interface {
	Create(ctx context.Context, trader *Trader) error
	FindByName(ctx context.Context, name string) (*Trader, error)
	FindAll(ctx context.Context) ([]*Trader, error)
	Count(ctx context.Context) (int64, error)
}
