package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bankslips/internal/models"
)

// MemoryBankslipRepository keeps bankslips in process memory, in insertion
// order. It backs the test suite and local runs without a database.
type MemoryBankslipRepository struct {
	mu    sync.Mutex
	slips []models.BankSlip
	index map[string]int
}

func NewMemoryBankslipRepository() *MemoryBankslipRepository {
	return &MemoryBankslipRepository{index: make(map[string]int)}
}

func (r *MemoryBankslipRepository) GetBankslipByID(ctx context.Context, id string) (models.BankSlip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return models.BankSlip{}, models.ErrBankslipNotFound
	}
	return r.slips[pos], nil
}

func (r *MemoryBankslipRepository) GetBankslips(ctx context.Context) ([]models.BankSlip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BankSlip, len(r.slips))
	copy(out, r.slips)
	return out, nil
}

func (r *MemoryBankslipRepository) SaveBankslip(ctx context.Context, slip models.BankSlip) (models.BankSlip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slip.ID == "" {
		slip.ID = uuid.NewString()
		slip.CreatedAt = time.Now()
		r.index[slip.ID] = len(r.slips)
		r.slips = append(r.slips, slip)
		return slip, nil
	}
	pos, ok := r.index[slip.ID]
	if !ok {
		r.index[slip.ID] = len(r.slips)
		r.slips = append(r.slips, slip)
		return slip, nil
	}
	r.slips[pos] = slip
	return slip, nil
}

func (r *MemoryBankslipRepository) DeleteAllBankslips(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slips = nil
	r.index = make(map[string]int)
	return nil
}
