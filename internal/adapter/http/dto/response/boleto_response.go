package response

import (
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"
)

const dueDateLayout = "2006-01-02"

type PixDiscountResponse struct {
	Enabled        bool   `json:"enabled"`
	Used           bool   `json:"used"`
	DiscountAmount string `json:"discount_amount"`
	MinAmount      string `json:"min_amount"`
}

// BoletoResponse renders monetary values as fixed two-decimal strings
// so clients never see float artifacts.
type BoletoResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	StudentRef    string              `json:"student_ref"`
	CourseRef     string              `json:"course_ref"`
	Amount        string              `json:"amount"`
	DueDate       string              `json:"due_date"`
	Status        string              `json:"status"`
	BillingCode   string              `json:"billing_code"`
	FormattedLine string              `json:"formatted_line"`
	Pix           PixDiscountResponse `json:"pix_discount"`
	PaidAmount    *string             `json:"paid_amount,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	CancelReason  string              `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromBoleto(b entities.Boleto) BoletoResponse {
	resp := BoletoResponse{
		ID:            b.ID,
		Number:        b.Number,
		StudentRef:    b.StudentRef,
		CourseRef:     b.CourseRef,
		Amount:        b.Amount.StringFixed(2),
		DueDate:       b.DueDate.Format(dueDateLayout),
		Status:        string(b.Status),
		BillingCode:   b.BillingCode,
		FormattedLine: b.FormattedLine,
		Pix: PixDiscountResponse{
			Enabled:        b.Pix.Enabled,
			Used:           b.Pix.Used,
			DiscountAmount: b.Pix.DiscountAmount.StringFixed(2),
			MinAmount:      b.Pix.MinAmount.StringFixed(2),
		},
		PaidAt:       b.PaidAt,
		CancelReason: b.CancelReason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.PaidAmount != nil {
		v := b.PaidAmount.StringFixed(2)
		resp.PaidAmount = &v
	}
	return resp
}

func FromBoletos(bs []entities.Boleto) []BoletoResponse {
	out := make([]BoletoResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBoleto(b))
	}
	return out
}

type PixQuoteResponse struct {
	Eligible        bool   `json:"eligible"`
	PayableAmount   string `json:"payable_amount"`
	AppliedDiscount string `json:"applied_discount"`
	Clamped         bool   `json:"clamped"`
	Reason          string `json:"reason,omitempty"`
}

func FromPixQuote(q entities.PixQuote) PixQuoteResponse {
	return PixQuoteResponse{
		Eligible:        q.Eligible,
		PayableAmount:   q.PayableAmount.StringFixed(2),
		AppliedDiscount: q.AppliedDiscount.StringFixed(2),
		Clamped:         q.Clamped,
		Reason:          q.Reason,
	}
}

type PaymentLinkResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func FromPaymentLink(l interfaces.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{ID: l.ID, URL: l.URL}
}

type SweepOverdueResponse struct {
	Promoted int `json:"promoted"`
}
