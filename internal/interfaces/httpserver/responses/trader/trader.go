package trader

import (
	domaintrader "peerweb/trader-api/internal/domain/trader"
	"peerweb/trader-api/internal/utils/functional"
)

// TraderResponse is one entry in the trader directory.
type TraderResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Signal int    `json:"signal"`
}

// TraderListResponse wraps the trader directory.
type TraderListResponse struct {
	Traders []TraderResponse `json:"traders"`
}

// TrustReportResponse is the outcome of a trust evaluation.
type TrustReportResponse struct {
	TraderName  string `json:"trader_name"`
	Rating      int    `json:"rating"`
	Explanation string `json:"explanation"`
}

func NewTraderResponse(t *domaintrader.Trader) *TraderResponse {
	return &TraderResponse{
		ID:     t.PublicID,
		Name:   t.Name,
		Signal: t.Signal,
	}
}

func NewTraderListResponse(traders []*domaintrader.Trader) *TraderListResponse {
	return &TraderListResponse{
		Traders: functional.Map(traders, func(t *domaintrader.Trader) TraderResponse {
			return *NewTraderResponse(t)
		}),
	}
}

func NewTrustReportResponse(report *domaintrader.TrustReport) *TrustReportResponse {
	return &TrustReportResponse{
		TraderName:  report.TraderName,
		Rating:      report.Rating,
		Explanation: report.Explanation,
	}
}
