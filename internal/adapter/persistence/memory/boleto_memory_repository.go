package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"
)

// BoletoRepository is a thread-safe in-memory implementation of
// interfaces.IBoletoRepository. It honors the same claim contract as
// the DynamoDB adapter (NextSequence peeks, CreateClaiming commits the
// counter bump and the inserts under one lock), so the allocation race
// behaves identically in tests and in the env-selected local mode.
type BoletoRepository struct {
	mu       sync.RWMutex
	boletos  map[string]entities.Boleto
	byNumber map[string]string
	counters map[string]int64
}

var _ interfaces.IBoletoRepository = (*BoletoRepository)(nil)

func NewBoletoRepository() *BoletoRepository {
	return &BoletoRepository{
		boletos:  make(map[string]entities.Boleto),
		byNumber: make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (r *BoletoRepository) NextSequence(_ context.Context, dateKey string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[dateKey] + 1, nil
}

func (r *BoletoRepository) CreateClaiming(ctx context.Context, b entities.Boleto, dateKey string, seq int64) (entities.Boleto, error) {
	bs, err := r.CreateClaimingBatch(ctx, []entities.Boleto{b}, dateKey, seq)
	if err != nil {
		return entities.Boleto{}, err
	}
	return bs[0], nil
}

// CreateClaimingBatch checks the claim and inserts under one write
// lock, mirroring the single DynamoDB transaction.
func (r *BoletoRepository) CreateClaimingBatch(_ context.Context, bs []entities.Boleto, dateKey string, first int64) ([]entities.Boleto, error) {
	if len(bs) == 0 {
		return nil, errors.New("nothing to claim")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counters[dateKey]+1 != first {
		return nil, interfaces.ErrSequenceConflict
	}
	for _, b := range bs {
		if _, exists := r.boletos[b.ID]; exists {
			return nil, interfaces.ErrSequenceConflict
		}
		if _, exists := r.byNumber[b.Number]; exists {
			return nil, interfaces.ErrSequenceConflict
		}
	}

	r.counters[dateKey] = first + int64(len(bs)) - 1
	for _, b := range bs {
		r.boletos[b.ID] = b
		r.byNumber[b.Number] = b.ID
	}
	return bs, nil
}

func (r *BoletoRepository) GetByID(_ context.Context, id string) (entities.Boleto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.boletos[id], nil
}

func (r *BoletoRepository) GetByNumber(_ context.Context, number string) (entities.Boleto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.boletos[r.byNumber[number]], nil
}

func (r *BoletoRepository) ListByStudentRef(_ context.Context, studentRef string) ([]entities.Boleto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Boleto, 0)
	for _, b := range r.boletos {
		if b.StudentRef == studentRef {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BoletoRepository) ListByStatus(_ context.Context, status entities.BoletoStatus) ([]entities.Boleto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Boleto, 0)
	for _, b := range r.boletos {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BoletoRepository) TransitionStatus(_ context.Context, id string, from, to entities.BoletoStatus, patch interfaces.StatusPatch) (entities.Boleto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boletos[id]
	if !ok || b.Status != from {
		return entities.Boleto{}, interfaces.ErrStaleStatus
	}
	if !from.CanTransitionTo(to) {
		return entities.Boleto{}, fmt.Errorf("transition %s -> %s not allowed", from, to)
	}

	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	if patch.PaidAmount != nil {
		v := *patch.PaidAmount
		b.PaidAmount = &v
	}
	if patch.PaidAt != nil {
		t := patch.PaidAt.UTC()
		b.PaidAt = &t
	}
	if patch.CancelReason != "" {
		b.CancelReason = patch.CancelReason
	}
	if patch.PixUsed {
		b.Pix.Used = true
	}

	r.boletos[id] = b
	return b, nil
}

func (r *BoletoRepository) MarkPixUsed(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boletos[id]
	if !ok || !b.Pix.Enabled || b.Pix.Used {
		return false, nil
	}
	b.Pix.Used = true
	b.UpdatedAt = time.Now().UTC()
	r.boletos[id] = b
	return true, nil
}
