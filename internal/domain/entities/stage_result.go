package entities

// WarningKind classifies configuration gaps detected while dispatching.
type WarningKind string

const (
	WarningProgramFallback   WarningKind = "program_fallback"
	WarningNoProgram         WarningKind = "no_program"
	WarningNoEligibleMachine WarningKind = "no_eligible_machine"
)

// UnassignedReason explains why an item was left out of every batch.
type UnassignedReason string

const (
	ReasonNoProgram         UnassignedReason = "no_program"
	ReasonNoEligibleMachine UnassignedReason = "no_eligible_machine"
	ReasonCapacityExhausted UnassignedReason = "capacity_exhausted"
)

type DispatchWarning struct {
	Kind      WarningKind   `json:"kind"`
	Stage     StageType     `json:"stage"`
	Category  LinenCategory `json:"category"`
	ProgramID string        `json:"program_id,omitempty"`
	Message   string        `json:"message"`
}

type UnassignedItem struct {
	Item   LinenItem        `json:"item"`
	Reason UnassignedReason `json:"reason"`
}

// StageResult is the output of one stage dispatch. Items never disappear:
// every input item is either in a batch or in Unassigned.
type StageResult struct {
	Stage      StageType         `json:"stage"`
	Batches    []Batch           `json:"batches"`
	Unassigned []UnassignedItem  `json:"unassigned"`
	Warnings   []DispatchWarning `json:"warnings"`
}

// Blocking reports whether the operator must act before the stage can be considered complete.
func (r StageResult) Blocking() bool {
	return len(r.Unassigned) > 0
}

// Items flattens the batch contents in batch order, the input pool of the next stage.
func (r StageResult) Items() []LinenItem {
	var out []LinenItem
	for _, b := range r.Batches {
		out = append(out, b.Items...)
	}
	return out
}

func (r StageResult) TotalLoad() int64 {
	var total int64
	for _, b := range r.Batches {
		total += b.TotalLoad
	}
	return total
}
