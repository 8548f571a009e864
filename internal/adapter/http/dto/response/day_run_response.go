package response

import (
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/pkg"
)

type BlockedOrderResponse struct {
	OrderID          string  `json:"order_id"`
	WeighedGrams     int64   `json:"weighed_grams"`
	TriageGrams      int64   `json:"triage_grams"`
	DeviationPercent float64 `json:"deviation_percent"`
}

type DaySummaryResponse struct {
	RunDate          string `json:"run_date"`
	OrdersProcessed  int    `json:"orders_processed"`
	TotalWeightGrams int64  `json:"total_weight_grams"`
	TotalRevenue     string `json:"total_revenue"`
}

type DayRunResponse struct {
	RunID         string                 `json:"run_id"`
	RunDate       string                 `json:"run_date"`
	Wash          StageResultResponse    `json:"wash"`
	Dry           StageResultResponse    `json:"dry"`
	Finish        StageResultResponse    `json:"finish"`
	Invoices      []InvoiceResponse      `json:"invoices"`
	BlockedOrders []BlockedOrderResponse `json:"blocked_orders"`
	Summary       DaySummaryResponse     `json:"summary"`
}

func FromDayRunOutcome(out usecase.DayRunOutcome) DayRunResponse {
	res := DayRunResponse{
		RunID:         out.Result.RunID,
		RunDate:       out.Result.RunDate,
		Wash:          FromStageResult(out.Result.Wash),
		Dry:           FromStageResult(out.Result.Dry),
		Finish:        FromStageResult(out.Result.Finish),
		Invoices:      make([]InvoiceResponse, 0, len(out.Result.Invoices)),
		BlockedOrders: make([]BlockedOrderResponse, 0, len(out.Result.BlockedOrders)),
		Summary: DaySummaryResponse{
			RunDate:          out.Summary.RunDate,
			OrdersProcessed:  out.Summary.OrdersProcessed,
			TotalWeightGrams: out.Summary.TotalWeightGrams,
			TotalRevenue:     out.Summary.TotalRevenue.StringFixed(2),
		},
	}
	for _, inv := range out.Result.Invoices {
		res.Invoices = append(res.Invoices, FromInvoice(inv))
	}
	for _, b := range out.Result.BlockedOrders {
		res.BlockedOrders = append(res.BlockedOrders, BlockedOrderResponse(b))
	}
	return res
}

type TriageLineResponse struct {
	LinenTypeID string `json:"linen_type_id"`
	WeightGrams int64  `json:"weight_grams"`
	PieceCount  int    `json:"piece_count"`
}

type SuggestedTriageResponse struct {
	OrderID           string               `json:"order_id"`
	WeighedTotalGrams int64                `json:"weighed_total_grams"`
	LineItems         []TriageLineResponse `json:"line_items"`
}

// NotTriagedResponse is the error body of a run refused for missing triage. It carries the
// lines suggested from collected items so the operator can confirm them.
type NotTriagedResponse struct {
	pkg.HTTPError
	SuggestedTriage []SuggestedTriageResponse `json:"suggested_triage"`
}

func FromSuggestedTriage(state entities.DailyRunState) []SuggestedTriageResponse {
	out := make([]SuggestedTriageResponse, 0, len(state.SuggestedTriage))
	for _, id := range state.SelectedOrderIDs {
		rec, ok := state.SuggestedTriage[id]
		if !ok {
			continue
		}
		lines := make([]TriageLineResponse, 0, len(rec.LineItems))
		for _, l := range rec.LineItems {
			lines = append(lines, TriageLineResponse(l))
		}
		out = append(out, SuggestedTriageResponse{
			OrderID:           rec.OrderID,
			WeighedTotalGrams: rec.WeighedTotalGrams,
			LineItems:         lines,
		})
	}
	return out
}
