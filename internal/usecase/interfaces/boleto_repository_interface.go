package interfaces

import (
	"context"
	"errors"
	"time"

	"edu_boletos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Condition failures surfaced by repositories. Usecases translate them
// into the caller-facing conflict taxonomy.
var (
	// ErrSequenceConflict means another caller claimed the peeked
	// sequence value first; the whole allocation should be retried.
	ErrSequenceConflict = errors.New("sequence value already claimed")

	// ErrStaleStatus means the condition-guarded status transition found
	// a different current status than the one read.
	ErrStaleStatus = errors.New("boleto status changed concurrently")
)

// StatusPatch carries the fields written together with a status
// transition. Number, billing code and formatted line are never part of
// a patch.
type StatusPatch struct {
	PaidAmount   *decimal.Decimal
	PaidAt       *time.Time
	CancelReason string
	PixUsed      bool
}

// IBoletoRepository abstracts boleto persistence plus the day-scoped
// sequence counter.
//
// The allocation contract is a compare-and-swap loop: NextSequence
// peeks the next free value for a date key, and CreateClaiming inserts
// the boleto while bumping the counter in one atomic unit, failing with
// ErrSequenceConflict when a concurrent caller won the claim. Nothing
// is persisted on a lost claim, so the caller can retry from scratch.

type IBoletoRepository interface {
	NextSequence(ctx context.Context, dateKey string) (int64, error)
	CreateClaiming(ctx context.Context, b entities.Boleto, dateKey string, seq int64) (entities.Boleto, error)
	CreateClaimingBatch(ctx context.Context, bs []entities.Boleto, dateKey string, first int64) ([]entities.Boleto, error)

	GetByID(ctx context.Context, id string) (entities.Boleto, error)
	GetByNumber(ctx context.Context, number string) (entities.Boleto, error)
	ListByStudentRef(ctx context.Context, studentRef string) ([]entities.Boleto, error)
	ListByStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error)

	// TransitionStatus applies from -> to plus the patch only when the
	// stored status still equals from, so two concurrent transitions on
	// one boleto resolve to exactly one winner.
	TransitionStatus(ctx context.Context, id string, from, to entities.BoletoStatus, patch StatusPatch) (entities.Boleto, error)

	// MarkPixUsed flips pix_discount.used when enabled && !used and
	// reports whether it flipped. Idempotent.
	MarkPixUsed(ctx context.Context, id string) (bool, error)
}
