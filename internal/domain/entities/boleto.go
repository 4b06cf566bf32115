package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoletoStatus represents the lifecycle of a payment slip.
//
// Domain notes:
//   - pendente is the only initial status.
//   - pago and cancelado are terminal.
//   - vencido is reached from pendente by the overdue sweep and can
//     still settle or cancel.

type BoletoStatus string

const (
	BoletoStatusPendente  BoletoStatus = "pendente"
	BoletoStatusPago      BoletoStatus = "pago"
	BoletoStatusVencido   BoletoStatus = "vencido"
	BoletoStatusCancelado BoletoStatus = "cancelado"
)

// MinBoletoAmount is the minimum payable amount, enforced at creation
// and preserved by the PIX discount clamp.
var MinBoletoAmount = decimal.New(1000, -2)

func (s BoletoStatus) Terminal() bool {
	return s == BoletoStatusPago || s == BoletoStatusCancelado
}

// CanTransitionTo is the closed transition table. Self transitions are
// not allowed here; idempotent paths are handled by the callers that
// want them (the overdue sweep, AlreadyCanceled handling).
func (s BoletoStatus) CanTransitionTo(to BoletoStatus) bool {
	switch s {
	case BoletoStatusPendente:
		return to == BoletoStatusPago || to == BoletoStatusVencido || to == BoletoStatusCancelado
	case BoletoStatusVencido:
		return to == BoletoStatusPago || to == BoletoStatusCancelado
	default:
		return false
	}
}

// Boleto is the payment slip persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number (unique, claimed transactionally)
//   - GSI2 (student_ref-index): student_ref
//   - GSI3 (status-index): status (overdue sweep scan)
//
// Number, BillingCode and FormattedLine are computed once at creation
// and never mutated by any transition.

type Boleto struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	StudentRef    string          `json:"student_ref"`
	CourseRef     string          `json:"course_ref"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Status        BoletoStatus    `json:"status"`
	BillingCode   string          `json:"billing_code"`
	FormattedLine string          `json:"formatted_line"`

	Pix PixDiscount `json:"pix_discount"`

	PaidAmount   *decimal.Decimal `json:"paid_amount,omitempty"`
	PaidAt       *time.Time       `json:"paid_at,omitempty"`
	CancelReason string           `json:"cancel_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Boleto) IsOpen() bool {
	return b.Status == BoletoStatusPendente || b.Status == BoletoStatusVencido
}

// Overdue reports whether a pending boleto should be promoted by the
// sweep on the given day.
func (b Boleto) Overdue(today time.Time) bool {
	return b.Status == BoletoStatusPendente && dateOnly(b.DueDate).Before(dateOnly(today))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
