package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"edu_boletos/internal/domain/billingcode"
	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBoletoNotFound       = errors.New("boleto not found")
	ErrInvalidBoletoID      = errors.New("invalid boleto id")
	ErrInvalidNumber        = errors.New("invalid boleto number")
	ErrInvalidStudentRef    = errors.New("invalid student_ref")
	ErrInvalidCourseRef     = errors.New("invalid course_ref")
	ErrInvalidBoletoAmount  = errors.New("invalid boleto amount")
	ErrInvalidDueDate       = errors.New("due date must not precede the issue date")
	ErrInvalidPixConfig     = errors.New("invalid pix discount configuration")
	ErrInvalidPaidAmount    = errors.New("invalid paid amount")
	ErrInvalidBatchSize     = errors.New("invalid batch size")
	ErrUnauthorizedIssuance = errors.New("student has no active enrollment in course")
	ErrAllocationExhausted  = errors.New("boleto number allocation exhausted, retry")
	ErrAlreadySettled       = errors.New("boleto already settled")
	ErrAlreadyCanceled      = errors.New("boleto already canceled")
	ErrInvalidTransition    = errors.New("invalid boleto status transition")
	ErrPixNotEligible       = errors.New("boleto not eligible for pix discount")
)

const (
	numberDateLayout = "20060102"
	sequencePadWidth = 5
	allocateAttempts = 5
	maxBatchSize     = 25
)

// IBoletoUseCase is the boleto lifecycle: issuance (single and batch),
// settlement, cancellation, the overdue sweep, PIX discount operations
// and the external settlement event effect.

type IBoletoUseCase interface {
	Create(ctx context.Context, in CreateBoletoInput) (entities.Boleto, error)
	CreateBatch(ctx context.Context, in []CreateBoletoInput) ([]entities.Boleto, error)
	GetByID(ctx context.Context, id string) (entities.Boleto, error)
	GetByNumber(ctx context.Context, number string) (entities.Boleto, error)
	ListByStudentRef(ctx context.Context, studentRef string) ([]entities.Boleto, error)
	Settle(ctx context.Context, id string, in SettleInput) (entities.Boleto, error)
	Cancel(ctx context.Context, id, reason string) (entities.Boleto, error)
	SweepOverdue(ctx context.Context) (int, error)
	QuotePix(ctx context.Context, id string) (entities.PixQuote, error)
	MarkPixUsed(ctx context.Context, id string) (bool, error)
	CreatePaymentLink(ctx context.Context, id string) (interfaces.PaymentLink, error)
	SettleFromExternalEvent(ctx context.Context, in ExternalEventInput) (entities.Boleto, error)
}

type CreateBoletoInput struct {
	StudentRef string
	CourseRef  string
	Amount     decimal.Decimal
	DueDate    time.Time
	Pix        entities.PixDiscount
}

type SettleInput struct {
	PaidAmount *decimal.Decimal
	PaidAt     *time.Time
	// Pix marks this settlement as a PIX payment: the payable amount
	// defaults to the discounted value and the discount is consumed.
	Pix bool
}

// ExternalEventInput is the effect of an external settlement
// notification. ExternalRef carries the boleto number the provider was
// given as external_reference.
type ExternalEventInput struct {
	ExternalRef string
	Status      string
	PaidAmount  *decimal.Decimal
	PaidAt      *time.Time
}

type BoletoUseCase struct {
	repo       interfaces.IBoletoRepository
	enrollment interfaces.IEnrollmentService
	gateway    interfaces.IPaymentGateway
	issuerID   string

	now func() time.Time
}

var _ IBoletoUseCase = (*BoletoUseCase)(nil)

func NewBoletoUseCase(repo interfaces.IBoletoRepository, enrollment interfaces.IEnrollmentService, gateway interfaces.IPaymentGateway, issuerID string) *BoletoUseCase {
	return &BoletoUseCase{
		repo:       repo,
		enrollment: enrollment,
		gateway:    gateway,
		issuerID:   issuerID,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *BoletoUseCase) Create(ctx context.Context, in CreateBoletoInput) (entities.Boleto, error) {
	log.Printf("[boleto][usecase] create start student_ref=%q course_ref=%q amount=%s due=%s",
		in.StudentRef, in.CourseRef, in.Amount, in.DueDate.Format(numberDateLayout))

	in, err := u.validateCreate(in)
	if err != nil {
		return entities.Boleto{}, err
	}
	if err := u.checkEnrollment(ctx, in); err != nil {
		return entities.Boleto{}, err
	}

	dateKey := u.now().Format(numberDateLayout)
	for attempt := 1; attempt <= allocateAttempts; attempt++ {
		seq, err := u.repo.NextSequence(ctx, dateKey)
		if err != nil {
			return entities.Boleto{}, err
		}

		b, err := u.buildBoleto(in, dateKey, seq)
		if err != nil {
			return entities.Boleto{}, err
		}

		created, err := u.repo.CreateClaiming(ctx, b, dateKey, seq)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			log.Printf("[boleto][usecase] sequence conflict date_key=%s seq=%d attempt=%d", dateKey, seq, attempt)
			continue
		}
		if err != nil {
			return entities.Boleto{}, err
		}
		log.Printf("[boleto][usecase] create success id=%s number=%s", created.ID, created.Number)
		return created, nil
	}

	log.Printf("[boleto][usecase] allocation exhausted date_key=%s after %d attempts", dateKey, allocateAttempts)
	return entities.Boleto{}, ErrAllocationExhausted
}

func (u *BoletoUseCase) CreateBatch(ctx context.Context, in []CreateBoletoInput) ([]entities.Boleto, error) {
	if len(in) == 0 || len(in) > maxBatchSize {
		return nil, ErrInvalidBatchSize
	}
	log.Printf("[boleto][usecase] batch create start size=%d", len(in))

	// Validate everything up front: a batch either reserves all of its
	// consecutive numbers or nothing.
	validated := make([]CreateBoletoInput, len(in))
	for i, item := range in {
		v, err := u.validateCreate(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if err := u.checkEnrollment(ctx, v); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		validated[i] = v
	}

	dateKey := u.now().Format(numberDateLayout)
	for attempt := 1; attempt <= allocateAttempts; attempt++ {
		first, err := u.repo.NextSequence(ctx, dateKey)
		if err != nil {
			return nil, err
		}

		bs := make([]entities.Boleto, len(validated))
		for i, item := range validated {
			b, err := u.buildBoleto(item, dateKey, first+int64(i))
			if err != nil {
				return nil, err
			}
			bs[i] = b
		}

		created, err := u.repo.CreateClaimingBatch(ctx, bs, dateKey, first)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			log.Printf("[boleto][usecase] batch sequence conflict date_key=%s first=%d attempt=%d", dateKey, first, attempt)
			continue
		}
		if err != nil {
			return nil, err
		}
		log.Printf("[boleto][usecase] batch create success size=%d first_number=%s", len(created), created[0].Number)
		return created, nil
	}

	return nil, ErrAllocationExhausted
}

func (u *BoletoUseCase) validateCreate(in CreateBoletoInput) (CreateBoletoInput, error) {
	in.StudentRef = strings.TrimSpace(in.StudentRef)
	in.CourseRef = strings.TrimSpace(in.CourseRef)
	if in.StudentRef == "" {
		return in, ErrInvalidStudentRef
	}
	if in.CourseRef == "" {
		return in, ErrInvalidCourseRef
	}
	if in.Amount.LessThan(entities.MinBoletoAmount) {
		return in, fmt.Errorf("%w: %s is below the minimum %s", ErrInvalidBoletoAmount, in.Amount, entities.MinBoletoAmount)
	}
	today := dateOnly(u.now())
	if dateOnly(in.DueDate).Before(today) {
		return in, ErrInvalidDueDate
	}
	if err := in.Pix.Validate(in.Amount); err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalidPixConfig, err)
	}
	return in, nil
}

func (u *BoletoUseCase) checkEnrollment(ctx context.Context, in CreateBoletoInput) error {
	if u.enrollment == nil {
		return errors.New("enrollment service not configured")
	}
	active, err := u.enrollment.HasActiveEnrollment(ctx, in.StudentRef, in.CourseRef)
	if err != nil {
		log.Printf("[boleto][usecase] enrollment check failed student_ref=%s course_ref=%s err=%v", in.StudentRef, in.CourseRef, err)
		return err
	}
	if !active {
		log.Printf("[boleto][usecase] issuance unauthorized student_ref=%s course_ref=%s", in.StudentRef, in.CourseRef)
		return ErrUnauthorizedIssuance
	}
	return nil
}

// buildBoleto derives the immutable identity of a new boleto: number,
// billing code and formatted line. Pure except for the uuid.
func (u *BoletoUseCase) buildBoleto(in CreateBoletoInput, dateKey string, seq int64) (entities.Boleto, error) {
	number := fmt.Sprintf("%s%0*d", dateKey, sequencePadWidth, seq)

	code, err := billingcode.Encode(u.issuerID, in.DueDate, in.Amount, number)
	if err != nil {
		return entities.Boleto{}, err
	}
	line, err := billingcode.FormatLinhaDigitavel(code)
	if err != nil {
		return entities.Boleto{}, err
	}

	now := u.now()
	return entities.Boleto{
		ID:            uuid.NewString(),
		Number:        number,
		StudentRef:    in.StudentRef,
		CourseRef:     in.CourseRef,
		Amount:        in.Amount,
		DueDate:       dateOnly(in.DueDate),
		Status:        entities.BoletoStatusPendente,
		BillingCode:   code,
		FormattedLine: line,
		Pix:           in.Pix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (u *BoletoUseCase) GetByID(ctx context.Context, id string) (entities.Boleto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Boleto{}, ErrInvalidBoletoID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.ID == "" {
		return entities.Boleto{}, ErrBoletoNotFound
	}
	return b, nil
}

func (u *BoletoUseCase) GetByNumber(ctx context.Context, number string) (entities.Boleto, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Boleto{}, ErrInvalidNumber
	}
	b, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.ID == "" {
		return entities.Boleto{}, ErrBoletoNotFound
	}
	return b, nil
}

func (u *BoletoUseCase) ListByStudentRef(ctx context.Context, studentRef string) ([]entities.Boleto, error) {
	studentRef = strings.TrimSpace(studentRef)
	if studentRef == "" {
		return nil, ErrInvalidStudentRef
	}
	return u.repo.ListByStudentRef(ctx, studentRef)
}

func (u *BoletoUseCase) Settle(ctx context.Context, id string, in SettleInput) (entities.Boleto, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Boleto{}, err
	}
	log.Printf("[boleto][usecase] settle start id=%s number=%s status=%s pix=%v", b.ID, b.Number, b.Status, in.Pix)

	if err := settleableFrom(b.Status); err != nil {
		return entities.Boleto{}, err
	}

	patch, err := u.settlePatch(b, in)
	if err != nil {
		return entities.Boleto{}, err
	}

	updated, err := u.repo.TransitionStatus(ctx, b.ID, b.Status, entities.BoletoStatusPago, patch)
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Boleto{}, u.staleSettleError(ctx, b.ID)
	}
	if err != nil {
		return entities.Boleto{}, err
	}
	log.Printf("[boleto][usecase] settle success id=%s number=%s paid_amount=%s", updated.ID, updated.Number, patch.PaidAmount)
	return updated, nil
}

func (u *BoletoUseCase) settlePatch(b entities.Boleto, in SettleInput) (interfaces.StatusPatch, error) {
	paidAt := u.now()
	if in.PaidAt != nil {
		paidAt = in.PaidAt.UTC()
	}

	paid := b.Amount
	patch := interfaces.StatusPatch{PaidAt: &paidAt}

	if in.Pix {
		quote := b.EvaluatePixDiscount(u.now())
		if !quote.Eligible {
			return interfaces.StatusPatch{}, fmt.Errorf("%w: %s", ErrPixNotEligible, quote.Reason)
		}
		paid = quote.PayableAmount
		patch.PixUsed = true
	}
	if in.PaidAmount != nil {
		if !in.PaidAmount.IsPositive() {
			return interfaces.StatusPatch{}, ErrInvalidPaidAmount
		}
		paid = *in.PaidAmount
	}

	patch.PaidAmount = &paid
	return patch, nil
}

// staleSettleError re-reads after a lost transition race to report the
// same error a sequential caller would have seen.
func (u *BoletoUseCase) staleSettleError(ctx context.Context, id string) error {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil || b.ID == "" {
		return ErrInvalidTransition
	}
	return settleableFrom(b.Status)
}

func settleableFrom(s entities.BoletoStatus) error {
	switch s {
	case entities.BoletoStatusPago:
		return ErrAlreadySettled
	case entities.BoletoStatusCancelado:
		return ErrInvalidTransition
	default:
		return nil
	}
}

func (u *BoletoUseCase) Cancel(ctx context.Context, id, reason string) (entities.Boleto, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Boleto{}, err
	}
	log.Printf("[boleto][usecase] cancel start id=%s number=%s status=%s", b.ID, b.Number, b.Status)

	if err := cancelableFrom(b.Status); err != nil {
		return entities.Boleto{}, err
	}

	updated, err := u.repo.TransitionStatus(ctx, b.ID, b.Status, entities.BoletoStatusCancelado, interfaces.StatusPatch{CancelReason: reason})
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Boleto{}, u.staleCancelError(ctx, b.ID)
	}
	if err != nil {
		return entities.Boleto{}, err
	}
	log.Printf("[boleto][usecase] cancel success id=%s number=%s", updated.ID, updated.Number)
	return updated, nil
}

func (u *BoletoUseCase) staleCancelError(ctx context.Context, id string) error {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil || b.ID == "" {
		return ErrInvalidTransition
	}
	return cancelableFrom(b.Status)
}

func cancelableFrom(s entities.BoletoStatus) error {
	switch s {
	case entities.BoletoStatusPago:
		// Money already moved; cancellation after settlement is never
		// permitted.
		return ErrInvalidTransition
	case entities.BoletoStatusCancelado:
		return ErrAlreadyCanceled
	default:
		return nil
	}
}

// SweepOverdue promotes pending boletos past their due date to vencido.
// Idempotent: boletos already promoted (or settled meanwhile) are
// skipped, so the sweep can run on any schedule.
func (u *BoletoUseCase) SweepOverdue(ctx context.Context) (int, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.BoletoStatusPendente)
	if err != nil {
		return 0, err
	}

	today := u.now()
	promoted := 0
	for _, b := range pending {
		if !b.Overdue(today) {
			continue
		}
		_, err := u.repo.TransitionStatus(ctx, b.ID, entities.BoletoStatusPendente, entities.BoletoStatusVencido, interfaces.StatusPatch{})
		if errors.Is(err, interfaces.ErrStaleStatus) {
			continue
		}
		if err != nil {
			return promoted, err
		}
		promoted++
	}
	if promoted > 0 {
		log.Printf("[boleto][usecase] overdue sweep promoted=%d scanned=%d", promoted, len(pending))
	}
	return promoted, nil
}

func (u *BoletoUseCase) QuotePix(ctx context.Context, id string) (entities.PixQuote, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PixQuote{}, err
	}
	return b.EvaluatePixDiscount(u.now()), nil
}

// MarkPixUsed consumes the PIX discount. Returns false without error
// when there was nothing to consume (disabled or already used).
func (u *BoletoUseCase) MarkPixUsed(ctx context.Context, id string) (bool, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return false, err
	}
	return u.repo.MarkPixUsed(ctx, id)
}

func (u *BoletoUseCase) CreatePaymentLink(ctx context.Context, id string) (interfaces.PaymentLink, error) {
	if u.gateway == nil {
		return interfaces.PaymentLink{}, errors.New("payment gateway not configured")
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return interfaces.PaymentLink{}, err
	}
	if !b.IsOpen() {
		return interfaces.PaymentLink{}, ErrInvalidTransition
	}

	payable := b.Amount
	if quote := b.EvaluatePixDiscount(u.now()); quote.Eligible {
		payable = quote.PayableAmount
	}

	link, err := u.gateway.CreatePaymentLink(ctx, b, payable)
	if err != nil {
		log.Printf("[boleto][usecase] payment link failed id=%s err=%v", b.ID, err)
		return interfaces.PaymentLink{}, err
	}
	log.Printf("[boleto][usecase] payment link created id=%s number=%s link_id=%s", b.ID, b.Number, link.ID)
	return link, nil
}

// SettleFromExternalEvent maps an external processor status onto the
// normal Settle/Cancel transitions. Unknown statuses map to pendente
// and leave the boleto untouched, never silently to pago.
func (u *BoletoUseCase) SettleFromExternalEvent(ctx context.Context, in ExternalEventInput) (entities.Boleto, error) {
	b, err := u.GetByNumber(ctx, in.ExternalRef)
	if err != nil {
		return entities.Boleto{}, err
	}

	switch mapExternalStatus(in.Status) {
	case entities.BoletoStatusPago:
		return u.Settle(ctx, b.ID, SettleInput{PaidAmount: in.PaidAmount, PaidAt: in.PaidAt})
	case entities.BoletoStatusCancelado:
		return u.Cancel(ctx, b.ID, fmt.Sprintf("external event: %s", in.Status))
	default:
		log.Printf("[boleto][usecase] external event ignored number=%s status=%q", b.Number, in.Status)
		return b, nil
	}
}

func mapExternalStatus(status string) entities.BoletoStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited", "paid", "pago":
		return entities.BoletoStatusPago
	case "cancelled", "canceled", "rejected", "refunded", "charged_back", "cancelado":
		return entities.BoletoStatusCancelado
	default:
		return entities.BoletoStatusPendente
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
