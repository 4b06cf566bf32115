package request

import (
	"errors"
	"strings"
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDueDateFormat = errors.New("invalid due_date format, expected YYYY-MM-DD")
)

const dueDateLayout = "2006-01-02"

type PixDiscountRequest struct {
	Enabled        bool            `json:"enabled"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	MinAmount      decimal.Decimal `json:"min_amount"`
}

// CreateBoletoRequest is the issuance payload. Amounts accept JSON
// numbers or strings; due_date is a calendar date without a time
// component.
type CreateBoletoRequest struct {
	StudentRef string              `json:"student_ref" binding:"required"`
	CourseRef  string              `json:"course_ref" binding:"required"`
	Amount     decimal.Decimal     `json:"amount" binding:"required"`
	DueDate    string              `json:"due_date" binding:"required"`
	Pix        *PixDiscountRequest `json:"pix_discount"`
}

func (r CreateBoletoRequest) ToInput() (usecase.CreateBoletoInput, error) {
	due, err := time.ParseInLocation(dueDateLayout, strings.TrimSpace(r.DueDate), time.UTC)
	if err != nil {
		return usecase.CreateBoletoInput{}, ErrInvalidDueDateFormat
	}

	in := usecase.CreateBoletoInput{
		StudentRef: strings.TrimSpace(r.StudentRef),
		CourseRef:  strings.TrimSpace(r.CourseRef),
		Amount:     r.Amount,
		DueDate:    due,
	}
	if r.Pix != nil {
		in.Pix = entities.PixDiscount{
			Enabled:        r.Pix.Enabled,
			DiscountAmount: r.Pix.DiscountAmount,
			MinAmount:      r.Pix.MinAmount,
		}
	}
	return in, nil
}

type CreateBoletoBatchRequest struct {
	Boletos []CreateBoletoRequest `json:"boletos" binding:"required"`
}

func (r CreateBoletoBatchRequest) ToInputs() ([]usecase.CreateBoletoInput, error) {
	inputs := make([]usecase.CreateBoletoInput, 0, len(r.Boletos))
	for _, b := range r.Boletos {
		in, err := b.ToInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

type SettleBoletoRequest struct {
	PaidAmount *decimal.Decimal `json:"paid_amount"`
	PaidAt     *time.Time       `json:"paid_at"`
	Pix        bool             `json:"pix"`
}

func (r SettleBoletoRequest) ToInput() usecase.SettleInput {
	return usecase.SettleInput{PaidAmount: r.PaidAmount, PaidAt: r.PaidAt, Pix: r.Pix}
}

type CancelBoletoRequest struct {
	Reason string `json:"reason"`
}

// PaymentEventRequest is the normalized webhook payload posted by the
// payments integration. external_ref carries the boleto number.
type PaymentEventRequest struct {
	ExternalRef string           `json:"external_ref" binding:"required"`
	Status      string           `json:"status" binding:"required"`
	PaidAmount  *decimal.Decimal `json:"paid_amount"`
	PaidAt      *time.Time       `json:"paid_at"`
}

func (r PaymentEventRequest) ToInput() usecase.ExternalEventInput {
	return usecase.ExternalEventInput{
		ExternalRef: strings.TrimSpace(r.ExternalRef),
		Status:      strings.TrimSpace(r.Status),
		PaidAmount:  r.PaidAmount,
		PaidAt:      r.PaidAt,
	}
}
