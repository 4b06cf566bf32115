package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"
	mock_interfaces "edu_boletos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*BoletoUseCase, *mock_interfaces.MockIBoletoRepository, *mock_interfaces.MockIEnrollmentService, *mock_interfaces.MockIPaymentGateway) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBoletoRepository(ctrl)
	enrollment := mock_interfaces.NewMockIEnrollmentService(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBoletoUseCase(repo, enrollment, gateway, "001")
	uc.now = func() time.Time { return testNow }
	return uc, repo, enrollment, gateway
}

func validInput() CreateBoletoInput {
	return CreateBoletoInput{
		StudentRef: "stu-1",
		CourseRef:  "course-1",
		Amount:     decimal.RequireFromString("150.00"),
		DueDate:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestBoletoUseCase_Create_Validations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBoletoInput)
		expected error
	}{
		{"empty student ref", func(in *CreateBoletoInput) { in.StudentRef = "  " }, ErrInvalidStudentRef},
		{"empty course ref", func(in *CreateBoletoInput) { in.CourseRef = "" }, ErrInvalidCourseRef},
		{"amount below minimum", func(in *CreateBoletoInput) { in.Amount = decimal.RequireFromString("9.99") }, ErrInvalidBoletoAmount},
		{"due date in the past", func(in *CreateBoletoInput) { in.DueDate = testNow.AddDate(0, 0, -1) }, ErrInvalidDueDate},
		{"pix discount swallows amount", func(in *CreateBoletoInput) {
			in.Pix = entities.PixDiscount{Enabled: true, DiscountAmount: decimal.RequireFromString("145.00")}
		}, ErrInvalidPixConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newTestUseCase(t)
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestBoletoUseCase_Create_DueDateTodayAllowed(t *testing.T) {
	uc, repo, enrollment, _ := newTestUseCase(t)
	in := validInput()
	in.DueDate = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(true, nil)
	repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(1), nil)
	repo.EXPECT().CreateClaiming(gomock.Any(), gomock.Any(), "20260301", int64(1)).
		DoAndReturn(func(_ context.Context, b entities.Boleto, _ string, _ int64) (entities.Boleto, error) {
			return b, nil
		})

	if _, err := uc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoletoUseCase_Create_Unauthorized(t *testing.T) {
	uc, _, enrollment, _ := newTestUseCase(t)
	enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(false, nil)

	_, err := uc.Create(context.Background(), validInput())
	if !errors.Is(err, ErrUnauthorizedIssuance) {
		t.Fatalf("expected ErrUnauthorizedIssuance, got %v", err)
	}
}

func TestBoletoUseCase_Create_Success(t *testing.T) {
	uc, repo, enrollment, _ := newTestUseCase(t)

	enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(true, nil)
	repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(7), nil)
	repo.EXPECT().CreateClaiming(gomock.Any(), gomock.Any(), "20260301", int64(7)).
		DoAndReturn(func(_ context.Context, b entities.Boleto, _ string, _ int64) (entities.Boleto, error) {
			if b.Number != "2026030100007" {
				t.Errorf("expected number 2026030100007, got %s", b.Number)
			}
			if len(b.BillingCode) != 44 {
				t.Errorf("expected 44-digit billing code, got %d digits", len(b.BillingCode))
			}
			if b.FormattedLine == "" {
				t.Error("expected formatted line")
			}
			if b.Status != entities.BoletoStatusPendente {
				t.Errorf("expected pendente, got %s", b.Status)
			}
			if b.ID == "" {
				t.Error("expected generated id")
			}
			return b, nil
		})

	created, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.BillingCode[:4] != "0019" {
		t.Errorf("expected code prefix 0019, got %s", created.BillingCode[:4])
	}
}

func TestBoletoUseCase_Create_RetriesOnSequenceConflict(t *testing.T) {
	uc, repo, enrollment, _ := newTestUseCase(t)

	enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(true, nil)
	gomock.InOrder(
		repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(3), nil),
		repo.EXPECT().CreateClaiming(gomock.Any(), gomock.Any(), "20260301", int64(3)).Return(entities.Boleto{}, interfaces.ErrSequenceConflict),
		repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(4), nil),
		repo.EXPECT().CreateClaiming(gomock.Any(), gomock.Any(), "20260301", int64(4)).
			DoAndReturn(func(_ context.Context, b entities.Boleto, _ string, _ int64) (entities.Boleto, error) {
				return b, nil
			}),
	)

	created, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Number != "2026030100004" {
		t.Errorf("expected the retried number, got %s", created.Number)
	}
}

func TestBoletoUseCase_Create_AllocationExhausted(t *testing.T) {
	uc, repo, enrollment, _ := newTestUseCase(t)

	enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(true, nil)
	repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(1), nil).Times(allocateAttempts)
	repo.EXPECT().CreateClaiming(gomock.Any(), gomock.Any(), "20260301", int64(1)).
		Return(entities.Boleto{}, interfaces.ErrSequenceConflict).Times(allocateAttempts)

	_, err := uc.Create(context.Background(), validInput())
	if !errors.Is(err, ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
}

func TestBoletoUseCase_CreateBatch(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.CreateBatch(context.Background(), nil)
		if !errors.Is(err, ErrInvalidBatchSize) {
			t.Fatalf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("oversized batch", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		in := make([]CreateBoletoInput, maxBatchSize+1)
		_, err := uc.CreateBatch(context.Background(), in)
		if !errors.Is(err, ErrInvalidBatchSize) {
			t.Fatalf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("consecutive numbers reserved together", func(t *testing.T) {
		uc, repo, enrollment, _ := newTestUseCase(t)
		in := []CreateBoletoInput{validInput(), validInput(), validInput()}

		enrollment.EXPECT().HasActiveEnrollment(gomock.Any(), "stu-1", "course-1").Return(true, nil).Times(3)
		repo.EXPECT().NextSequence(gomock.Any(), "20260301").Return(int64(10), nil)
		repo.EXPECT().CreateClaimingBatch(gomock.Any(), gomock.Any(), "20260301", int64(10)).
			DoAndReturn(func(_ context.Context, bs []entities.Boleto, _ string, _ int64) ([]entities.Boleto, error) {
				if len(bs) != 3 {
					t.Fatalf("expected 3 boletos, got %d", len(bs))
				}
				for i, b := range bs {
					expected := fmt.Sprintf("20260301%05d", 10+i)
					if b.Number != expected {
						t.Errorf("expected number %s, got %s", expected, b.Number)
					}
				}
				return bs, nil
			})

		created, err := uc.CreateBatch(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created[0].Number != "2026030100010" || created[2].Number != "2026030100012" {
			t.Errorf("expected numbers 2026030100010..12, got %s..%s", created[0].Number, created[2].Number)
		}
	})
}

func TestBoletoUseCase_Settle(t *testing.T) {
	pending := func() entities.Boleto {
		return entities.Boleto{
			ID:      "b-1",
			Number:  "2026030100001",
			Amount:  decimal.RequireFromString("150.00"),
			DueDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			Status:  entities.BoletoStatusPendente,
		}
	}

	t.Run("defaults paid amount to the boleto amount", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusPago, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.BoletoStatus, patch interfaces.StatusPatch) (entities.Boleto, error) {
				if patch.PaidAmount == nil || !patch.PaidAmount.Equal(b.Amount) {
					t.Errorf("expected paid amount %s, got %v", b.Amount, patch.PaidAmount)
				}
				if patch.PaidAt == nil || !patch.PaidAt.Equal(testNow) {
					t.Errorf("expected paid_at defaulted to now, got %v", patch.PaidAt)
				}
				if patch.PixUsed {
					t.Error("non-pix settlement must not consume the discount")
				}
				b.Status = entities.BoletoStatusPago
				return b, nil
			})

		updated, err := uc.Settle(context.Background(), "b-1", SettleInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BoletoStatusPago {
			t.Errorf("expected pago, got %s", updated.Status)
		}
	})

	t.Run("pix settlement uses the discounted amount and consumes it", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		b.Pix = entities.PixDiscount{Enabled: true, DiscountAmount: decimal.RequireFromString("20.00")}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusPago, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.BoletoStatus, patch interfaces.StatusPatch) (entities.Boleto, error) {
				if patch.PaidAmount == nil || !patch.PaidAmount.Equal(decimal.RequireFromString("130.00")) {
					t.Errorf("expected discounted paid amount 130.00, got %v", patch.PaidAmount)
				}
				if !patch.PixUsed {
					t.Error("pix settlement must consume the discount")
				}
				b.Status = entities.BoletoStatusPago
				return b, nil
			})

		if _, err := uc.Settle(context.Background(), "b-1", SettleInput{Pix: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pix settlement on ineligible boleto", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Settle(context.Background(), "b-1", SettleInput{Pix: true})
		if !errors.Is(err, ErrPixNotEligible) {
			t.Fatalf("expected ErrPixNotEligible, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		b.Status = entities.BoletoStatusPago
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Settle(context.Background(), "b-1", SettleInput{})
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled, got %v", err)
		}
	})

	t.Run("settle on canceled boleto", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		b.Status = entities.BoletoStatusCancelado
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Settle(context.Background(), "b-1", SettleInput{})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("overdue boleto still settles", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		b.Status = entities.BoletoStatusVencido
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusVencido, entities.BoletoStatusPago, gomock.Any()).
			Return(b, nil)

		if _, err := uc.Settle(context.Background(), "b-1", SettleInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost transition race maps to the sequential error", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		b := pending()
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusPago, gomock.Any()).
			Return(entities.Boleto{}, interfaces.ErrStaleStatus)
		settled := b
		settled.Status = entities.BoletoStatusPago
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(settled, nil)

		_, err := uc.Settle(context.Background(), "b-1", SettleInput{})
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled after losing the race, got %v", err)
		}
	})

	t.Run("rejects non-positive paid amount", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pending(), nil)
		zero := decimal.Zero
		_, err := uc.Settle(context.Background(), "b-1", SettleInput{PaidAmount: &zero})
		if !errors.Is(err, ErrInvalidPaidAmount) {
			t.Fatalf("expected ErrInvalidPaidAmount, got %v", err)
		}
	})
}

func TestBoletoUseCase_Cancel(t *testing.T) {
	base := entities.Boleto{ID: "b-1", Number: "2026030100001", Status: entities.BoletoStatusPendente}

	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(base, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusCancelado, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ entities.BoletoStatus, patch interfaces.StatusPatch) (entities.Boleto, error) {
				if patch.CancelReason != "duplicate charge" {
					t.Errorf("expected reason to be persisted, got %q", patch.CancelReason)
				}
				canceled := base
				canceled.Status = entities.BoletoStatusCancelado
				return canceled, nil
			})

		updated, err := uc.Cancel(context.Background(), "b-1", "duplicate charge")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BoletoStatusCancelado {
			t.Errorf("expected cancelado, got %s", updated.Status)
		}
	})

	t.Run("cancel on paid boleto", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		paid := base
		paid.Status = entities.BoletoStatusPago
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(paid, nil)

		_, err := uc.Cancel(context.Background(), "b-1", "late")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel twice", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		canceled := base
		canceled.Status = entities.BoletoStatusCancelado
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(canceled, nil)

		_, err := uc.Cancel(context.Background(), "b-1", "again")
		if !errors.Is(err, ErrAlreadyCanceled) {
			t.Fatalf("expected ErrAlreadyCanceled, got %v", err)
		}
	})
}

func TestBoletoUseCase_SweepOverdue(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)

	due := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	pending := []entities.Boleto{
		{ID: "late-1", Status: entities.BoletoStatusPendente, DueDate: due(2026, time.February, 10)},
		{ID: "late-2", Status: entities.BoletoStatusPendente, DueDate: due(2026, time.February, 28)},
		{ID: "current", Status: entities.BoletoStatusPendente, DueDate: due(2026, time.March, 1)},
		{ID: "future", Status: entities.BoletoStatusPendente, DueDate: due(2026, time.April, 1)},
	}

	repo.EXPECT().ListByStatus(gomock.Any(), entities.BoletoStatusPendente).Return(pending, nil)
	repo.EXPECT().TransitionStatus(gomock.Any(), "late-1", entities.BoletoStatusPendente, entities.BoletoStatusVencido, gomock.Any()).
		Return(entities.Boleto{}, nil)
	// late-2 was promoted by a concurrent sweep; skipping it keeps the
	// sweep idempotent.
	repo.EXPECT().TransitionStatus(gomock.Any(), "late-2", entities.BoletoStatusPendente, entities.BoletoStatusVencido, gomock.Any()).
		Return(entities.Boleto{}, interfaces.ErrStaleStatus)

	promoted, err := uc.SweepOverdue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted != 1 {
		t.Errorf("expected 1 promotion, got %d", promoted)
	}
}

func TestBoletoUseCase_SettleFromExternalEvent(t *testing.T) {
	base := entities.Boleto{
		ID:      "b-1",
		Number:  "2026030100001",
		Amount:  decimal.RequireFromString("150.00"),
		DueDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:  entities.BoletoStatusPendente,
	}

	t.Run("approved settles", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "2026030100001").Return(base, nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(base, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusPago, gomock.Any()).
			Return(base, nil)

		_, err := uc.SettleFromExternalEvent(context.Background(), ExternalEventInput{ExternalRef: "2026030100001", Status: "approved"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected cancels", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "2026030100001").Return(base, nil)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(base, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "b-1", entities.BoletoStatusPendente, entities.BoletoStatusCancelado, gomock.Any()).
			Return(base, nil)

		_, err := uc.SettleFromExternalEvent(context.Background(), ExternalEventInput{ExternalRef: "2026030100001", Status: "rejected"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status is a no-op, never paid", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "2026030100001").Return(base, nil)

		b, err := uc.SettleFromExternalEvent(context.Background(), ExternalEventInput{ExternalRef: "2026030100001", Status: "in_mediation"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BoletoStatusPendente {
			t.Errorf("unknown status must leave the boleto pending, got %s", b.Status)
		}
	})

	t.Run("unknown external ref", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "missing").Return(entities.Boleto{}, nil)

		_, err := uc.SettleFromExternalEvent(context.Background(), ExternalEventInput{ExternalRef: "missing", Status: "approved"})
		if !errors.Is(err, ErrBoletoNotFound) {
			t.Fatalf("expected ErrBoletoNotFound, got %v", err)
		}
	})
}

func TestBoletoUseCase_QuotePix(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	b := entities.Boleto{
		ID:      "b-1",
		Amount:  decimal.RequireFromString("15.00"),
		DueDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:  entities.BoletoStatusPendente,
		Pix:     entities.PixDiscount{Enabled: true, DiscountAmount: decimal.RequireFromString("10.00")},
	}
	repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

	quote, err := uc.QuotePix(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.Eligible || !quote.Clamped {
		t.Fatalf("expected eligible clamped quote, got %+v", quote)
	}
	if !quote.PayableAmount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("expected payable 10.00, got %s", quote.PayableAmount)
	}
	if !quote.AppliedDiscount.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("expected applied discount 5.00, got %s", quote.AppliedDiscount)
	}
}

func TestBoletoUseCase_MarkPixUsed(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	b := entities.Boleto{ID: "b-1", Pix: entities.PixDiscount{Enabled: true}}
	repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().MarkPixUsed(gomock.Any(), "b-1").Return(true, nil),
		repo.EXPECT().MarkPixUsed(gomock.Any(), "b-1").Return(false, nil),
	)

	flipped, err := uc.MarkPixUsed(context.Background(), "b-1")
	if err != nil || !flipped {
		t.Fatalf("expected first call to flip, got %v %v", flipped, err)
	}
	flipped, err = uc.MarkPixUsed(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("second call must not error: %v", err)
	}
	if flipped {
		t.Error("second call must be a no-op")
	}
}

func TestBoletoUseCase_CreatePaymentLink(t *testing.T) {
	base := entities.Boleto{
		ID:      "b-1",
		Number:  "2026030100001",
		Amount:  decimal.RequireFromString("150.00"),
		DueDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:  entities.BoletoStatusPendente,
	}

	t.Run("uses discounted amount when pix is eligible", func(t *testing.T) {
		uc, repo, _, gateway := newTestUseCase(t)
		b := base
		b.Pix = entities.PixDiscount{Enabled: true, DiscountAmount: decimal.RequireFromString("20.00")}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any(), decimal.RequireFromString("130.00")).
			Return(interfaces.PaymentLink{ID: "mp-1", URL: "https://pay.example/mp-1"}, nil)

		link, err := uc.CreatePaymentLink(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ID != "mp-1" {
			t.Errorf("expected link id mp-1, got %s", link.ID)
		}
	})

	t.Run("terminal boleto cannot get a link", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		paid := base
		paid.Status = entities.BoletoStatusPago
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(paid, nil)

		_, err := uc.CreatePaymentLink(context.Background(), "b-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
