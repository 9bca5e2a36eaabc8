package traderhandler

import (
	"context"

	"peerweb/trader-api/internal/domain/trader"
	traderresponses "peerweb/trader-api/internal/interfaces/httpserver/responses/trader"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// TraderHandler handles trader directory HTTP requests
type TraderHandler struct {
	traderService *trader.Service
}

// NewTraderHandler creates a new trader handler
func NewTraderHandler(traderService *trader.Service) *TraderHandler {
	return &TraderHandler{traderService: traderService}
}

// ListTraders returns the full trader directory.
func (h *TraderHandler) ListTraders(ctx context.Context) (*traderresponses.TraderListResponse, error) {
	traders, err := h.traderService.ListTraders(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list traders")
	}
	return traderresponses.NewTraderListResponse(traders), nil
}

// TrustRating evaluates a trader's trustworthiness.
func (h *TraderHandler) TrustRating(ctx context.Context, name string) (*traderresponses.TrustReportResponse, error) {
	report, err := h.traderService.TrustRating(ctx, name)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to rate trader")
	}
	return traderresponses.NewTrustReportResponse(report), nil
}
