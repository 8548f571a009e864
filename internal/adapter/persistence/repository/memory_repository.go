package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

// MemoryWorkflowRepository keeps workflow states in process memory. The planner CLI runs on
// it; the service uses WorkflowDynamoRepository.
type MemoryWorkflowRepository struct {
	mu     sync.RWMutex
	states map[string]entities.OrderWorkflowState
}

var _ interfaces.IWorkflowStateRepository = (*MemoryWorkflowRepository)(nil)

func NewMemoryWorkflowRepository() *MemoryWorkflowRepository {
	return &MemoryWorkflowRepository{states: map[string]entities.OrderWorkflowState{}}
}

func (r *MemoryWorkflowRepository) Get(_ context.Context, orderID string) (entities.OrderWorkflowState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyWorkflowState(r.states[orderID]), nil
}

func (r *MemoryWorkflowRepository) Save(_ context.Context, s entities.OrderWorkflowState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[s.OrderID] = copyWorkflowState(s)
	return nil
}

// All returns every state ordered by order id.
func (r *MemoryWorkflowRepository) All() []entities.OrderWorkflowState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.OrderWorkflowState, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, copyWorkflowState(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

func copyWorkflowState(s entities.OrderWorkflowState) entities.OrderWorkflowState {
	if s.CompletedAt != nil {
		completed := make(map[entities.WorkflowStage]time.Time, len(s.CompletedAt))
		for k, v := range s.CompletedAt {
			completed[k] = v
		}
		s.CompletedAt = completed
	}
	return s
}

// MemoryBatchRepository is the in-process IBatchRepository.
type MemoryBatchRepository struct {
	mu      sync.RWMutex
	order   []string
	batches map[string]entities.Batch
}

var _ interfaces.IBatchRepository = (*MemoryBatchRepository)(nil)

func NewMemoryBatchRepository() *MemoryBatchRepository {
	return &MemoryBatchRepository{batches: map[string]entities.Batch{}}
}

func (r *MemoryBatchRepository) SaveAll(_ context.Context, batches []entities.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range batches {
		if _, ok := r.batches[b.ID]; !ok {
			r.order = append(r.order, b.ID)
		}
		r.batches[b.ID] = b
	}
	return nil
}

func (r *MemoryBatchRepository) GetByID(_ context.Context, id string) (entities.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.batches[id], nil
}

func (r *MemoryBatchRepository) ListByRunDate(_ context.Context, runDate string) ([]entities.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Batch
	for _, id := range r.order {
		if b := r.batches[id]; b.RunDate == runDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBatchRepository) UpdateStatus(_ context.Context, id string, from, to entities.BatchStatus, at time.Time) (entities.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok || b.Status != from {
		return entities.Batch{}, nil
	}
	b.Status = to
	switch to {
	case entities.BatchStatusStarted:
		b.StartedAt = &at
	case entities.BatchStatusFinished:
		b.FinishedAt = &at
	}
	r.batches[id] = b
	return b, nil
}

// MemoryInvoiceRepository is the in-process IInvoiceRepository.
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]entities.Invoice
}

var _ interfaces.IInvoiceRepository = (*MemoryInvoiceRepository)(nil)

func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{invoices: map[string]entities.Invoice{}}
}

func (r *MemoryInvoiceRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[inv.ID]; ok {
		return entities.Invoice{}, ErrConditionalCheckFailed
	}
	r.invoices[inv.ID] = inv
	return inv, nil
}

func (r *MemoryInvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.invoices[id], nil
}

func (r *MemoryInvoiceRepository) ListByRunDate(_ context.Context, runDate string) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Invoice
	for _, inv := range r.invoices {
		if inv.RunDate == runDate {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryInvoiceRepository) UpdateStatusByID(_ context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	inv.Status = status
	inv.UpdatedAt = time.Now().UTC()
	r.invoices[id] = inv
	return inv, nil
}
