package response

import (
	"time"

	"laundry_dispatch/internal/domain/entities"
)

type BatchItemResponse struct {
	OrderID         string `json:"order_id,omitempty"`
	LinenTypeID     string `json:"linen_type_id"`
	LinenTypeName   string `json:"linen_type_name,omitempty"`
	Category        string `json:"category"`
	PieceCount      int    `json:"piece_count"`
	WeightGrams     int64  `json:"weight_grams"`
	EstimatedWeight bool   `json:"estimated_weight,omitempty"`
}

type BatchResponse struct {
	ID                       string              `json:"id"`
	RunID                    string              `json:"run_id,omitempty"`
	RunDate                  string              `json:"run_date,omitempty"`
	Stage                    string              `json:"stage"`
	MachineID                string              `json:"machine_id"`
	MachineName              string              `json:"machine_name"`
	ProgramID                string              `json:"program_id"`
	ProgramName              string              `json:"program_name"`
	Category                 string              `json:"category"`
	Items                    []BatchItemResponse `json:"items"`
	OrderIDs                 []string            `json:"order_ids"`
	TotalLoad                int64               `json:"total_load"`
	Capacity                 int64               `json:"capacity"`
	LoadUnit                 string              `json:"load_unit"`
	UtilizationRate          float64             `json:"utilization_rate"`
	Underutilized            bool                `json:"underutilized"`
	EstimatedDurationMinutes int                 `json:"estimated_duration_minutes"`
	ResourceConsumption      float64             `json:"resource_consumption"`
	Status                   string              `json:"status"`
	StartedAt                *time.Time          `json:"started_at,omitempty"`
	FinishedAt               *time.Time          `json:"finished_at,omitempty"`
}

type UnassignedItemResponse struct {
	Item   BatchItemResponse `json:"item"`
	Reason string            `json:"reason"`
}

type WarningResponse struct {
	Kind      string `json:"kind"`
	Category  string `json:"category"`
	ProgramID string `json:"program_id,omitempty"`
	Message   string `json:"message"`
}

type StageResultResponse struct {
	Stage      string                   `json:"stage"`
	Batches    []BatchResponse          `json:"batches"`
	Unassigned []UnassignedItemResponse `json:"unassigned"`
	Warnings   []WarningResponse        `json:"warnings"`
	TotalLoad  int64                    `json:"total_load"`
	Blocking   bool                     `json:"blocking"`
}

func FromLinenItem(it entities.LinenItem) BatchItemResponse {
	return BatchItemResponse{
		OrderID:         it.OrderID,
		LinenTypeID:     it.LinenTypeID,
		LinenTypeName:   it.LinenTypeName,
		Category:        string(it.Category),
		PieceCount:      it.PieceCount,
		WeightGrams:     it.WeightGrams,
		EstimatedWeight: it.EstimatedWeight,
	}
}

func FromBatch(b entities.Batch) BatchResponse {
	items := make([]BatchItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, FromLinenItem(it))
	}
	orderIDs := b.OrderIDs()
	if orderIDs == nil {
		orderIDs = []string{}
	}
	return BatchResponse{
		ID:                       b.ID,
		RunID:                    b.RunID,
		RunDate:                  b.RunDate,
		Stage:                    string(b.Stage),
		MachineID:                b.MachineID,
		MachineName:              b.MachineName,
		ProgramID:                b.ProgramID,
		ProgramName:              b.ProgramName,
		Category:                 string(b.Category),
		Items:                    items,
		OrderIDs:                 orderIDs,
		TotalLoad:                b.TotalLoad,
		Capacity:                 b.Capacity,
		LoadUnit:                 string(b.LoadUnit),
		UtilizationRate:          b.UtilizationRate,
		Underutilized:            b.Underutilized(),
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
		ResourceConsumption:      b.ResourceConsumption,
		Status:                   string(b.Status),
		StartedAt:                b.StartedAt,
		FinishedAt:               b.FinishedAt,
	}
}

func FromBatches(batches []entities.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, FromBatch(b))
	}
	return out
}

func FromStageResult(r entities.StageResult) StageResultResponse {
	res := StageResultResponse{
		Stage:      string(r.Stage),
		Batches:    FromBatches(r.Batches),
		Unassigned: make([]UnassignedItemResponse, 0, len(r.Unassigned)),
		Warnings:   make([]WarningResponse, 0, len(r.Warnings)),
		TotalLoad:  r.TotalLoad(),
		Blocking:   r.Blocking(),
	}
	for _, u := range r.Unassigned {
		res.Unassigned = append(res.Unassigned, UnassignedItemResponse{Item: FromLinenItem(u.Item), Reason: string(u.Reason)})
	}
	for _, w := range r.Warnings {
		res.Warnings = append(res.Warnings, WarningResponse{
			Kind:      string(w.Kind),
			Category:  string(w.Category),
			ProgramID: w.ProgramID,
			Message:   w.Message,
		})
	}
	return res
}
