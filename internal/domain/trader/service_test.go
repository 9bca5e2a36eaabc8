package trader

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type mockRepository struct {
	traders []*Trader
	findErr error
}

func (m *mockRepository) Create(_ context.Context, trader *Trader) error {
	m.traders = append(m.traders, trader)
	return nil
}

func (m *mockRepository) FindByName(_ context.Context, name string) (*Trader, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, trader := range m.traders {
		if trader.Name == name {
			return trader, nil
		}
	}
	return nil, errors.New("trader not found")
}

func (m *mockRepository) FindAll(_ context.Context) ([]*Trader, error) {
	return m.traders, nil
}

func (m *mockRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.traders)), nil
}

type mockModel struct {
	configured bool
	text       string
	err        error
}

func (m *mockModel) GenerateText(_ context.Context, _, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockModel) Configured() bool { return m.configured }

func testTrader() *Trader {
	return &Trader{
		PublicID:        "trdr_1",
		Name:            "CYBER_NOMAD",
		Signal:          76,
		Dossier:         Dossier{TransactionHistory: "clean", NetworkActivity: "stable", CommunityReports: "good"},
		MockRating:      78,
		MockExplanation: "Good reputation but can be slow. (Mock Data)",
	}
}

func TestTrustRatingUnconfiguredServesMock(t *testing.T) {
	repo := &mockRepository{traders: []*Trader{testTrader()}}
	svc := NewService(repo, &mockModel{configured: false}, zerolog.Nop())

	report, err := svc.TrustRating(context.Background(), "CYBER_NOMAD")
	if err != nil {
		t.Fatalf("TrustRating: %v", err)
	}
	if report.Rating != 78 || report.Explanation != "Good reputation but can be slow. (Mock Data)" {
		t.Errorf("unexpected mock report: %+v", report)
	}
	if report.TraderName != "CYBER_NOMAD" {
		t.Errorf("trader name = %q", report.TraderName)
	}
}

func TestTrustRatingParsesModelOutput(t *testing.T) {
	repo := &mockRepository{traders: []*Trader{testTrader()}}
	model := &mockModel{
		configured: true,
		text:       "```json\n{\"rating\": 64, \"explanation\": \"Solid but watch the latency.\"}\n```",
	}
	svc := NewService(repo, model, zerolog.Nop())

	report, err := svc.TrustRating(context.Background(), "CYBER_NOMAD")
	if err != nil {
		t.Fatalf("TrustRating: %v", err)
	}
	if report.Rating != 64 || report.Explanation != "Solid but watch the latency." {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestTrustRatingClampsRating(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"above range", `{"rating": 140, "explanation": "too eager"}`, 100},
		{"below range", `{"rating": -5, "explanation": "too harsh"}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepository{traders: []*Trader{testTrader()}}
			svc := NewService(repo, &mockModel{configured: true, text: tc.raw}, zerolog.Nop())

			report, err := svc.TrustRating(context.Background(), "CYBER_NOMAD")
			if err != nil {
				t.Fatalf("TrustRating: %v", err)
			}
			if report.Rating != tc.want {
				t.Errorf("rating = %d, want %d", report.Rating, tc.want)
			}
		})
	}
}

func TestTrustRatingModelFailureDegrades(t *testing.T) {
	repo := &mockRepository{traders: []*Trader{testTrader()}}
	svc := NewService(repo, &mockModel{configured: true, err: errors.New("timeout")}, zerolog.Nop())

	report, err := svc.TrustRating(context.Background(), "CYBER_NOMAD")
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}
	if report.Rating != 0 || report.Explanation != failureExplanation {
		t.Errorf("unexpected degraded report: %+v", report)
	}
}

func TestTrustRatingMalformedOutputDegrades(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose", "That trader seems fine to me."},
		{"missing explanation", `{"rating": 50}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepository{traders: []*Trader{testTrader()}}
			svc := NewService(repo, &mockModel{configured: true, text: tc.raw}, zerolog.Nop())

			report, err := svc.TrustRating(context.Background(), "CYBER_NOMAD")
			if err != nil {
				t.Fatalf("TrustRating: %v", err)
			}
			if report.Rating != 0 || report.Explanation != failureExplanation {
				t.Errorf("unexpected report: %+v", report)
			}
		})
	}
}

func TestTrustRatingUnknownTrader(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockModel{}, zerolog.Nop())

	if _, err := svc.TrustRating(context.Background(), "GHOST"); err == nil {
		t.Fatal("expected error for unknown trader")
	}
}

func TestListTraders(t *testing.T) {
	repo := &mockRepository{traders: []*Trader{testTrader()}}
	svc := NewService(repo, &mockModel{}, zerolog.Nop())

	traders, err := svc.ListTraders(context.Background())
	if err != nil {
		t.Fatalf("ListTraders: %v", err)
	}
	if len(traders) != 1 || traders[0].Name != "CYBER_NOMAD" {
		t.Errorf("unexpected directory: %+v", traders)
	}
}
