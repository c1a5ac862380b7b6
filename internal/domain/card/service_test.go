package card_test

import (
	"context"
	"testing"
	"time"

	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeCardRepository struct {
	createFn             func(ctx context.Context, c *card.Card) error
	updateFn             func(ctx context.Context, c *card.Card) error
	getByIDFn            func(ctx context.Context, cardID, workspaceID ulid.ULID) (*card.Card, error)
	getByWorkspaceFn     func(ctx context.Context, workspaceID ulid.ULID) ([]*card.Card, error)
	deleteFn             func(ctx context.Context, cardID, workspaceID ulid.ULID) error
	createPurchaseFn     func(ctx context.Context, purchase *transaction.Transaction) error
	getPurchasesFn       func(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error)
	getUnpaidFn          func(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error)
	settleCycleFn        func(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error
	findOrphanPaymentsFn func(ctx context.Context, workspaceID, cardID ulid.ULID) ([]*transaction.Transaction, error)
}

func (f *fakeCardRepository) Create(ctx context.Context, c *card.Card) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCardRepository) Update(ctx context.Context, c *card.Card) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeCardRepository) GetByID(ctx context.Context, cardID, workspaceID ulid.ULID) (*card.Card, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, cardID, workspaceID)
	}
	return &card.Card{Id: cardID, WorkspaceId: workspaceID, Name: "Nubank"}, nil
}

func (f *fakeCardRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*card.Card, error) {
	if f.getByWorkspaceFn != nil {
		return f.getByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (f *fakeCardRepository) Delete(ctx context.Context, cardID, workspaceID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, cardID, workspaceID)
	}
	return nil
}

func (f *fakeCardRepository) CreatePurchase(ctx context.Context, purchase *transaction.Transaction) error {
	if f.createPurchaseFn != nil {
		return f.createPurchaseFn(ctx, purchase)
	}
	return nil
}

func (f *fakeCardRepository) GetPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
	if f.getPurchasesFn != nil {
		return f.getPurchasesFn(ctx, workspaceID, cardID, cycle)
	}
	return nil, nil
}

func (f *fakeCardRepository) GetUnpaidPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
	if f.getUnpaidFn != nil {
		return f.getUnpaidFn(ctx, workspaceID, cardID, cycle)
	}
	return nil, nil
}

func (f *fakeCardRepository) SettleCycle(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error {
	if f.settleCycleFn != nil {
		return f.settleCycleFn(ctx, payment, lineIDs)
	}
	return nil
}

func (f *fakeCardRepository) FindOrphanPayments(ctx context.Context, workspaceID, cardID ulid.ULID) ([]*transaction.Transaction, error) {
	if f.findOrphanPaymentsFn != nil {
		return f.findOrphanPaymentsFn(ctx, workspaceID, cardID)
	}
	return nil, nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func newCardService(repo *fakeCardRepository) *card.Service {
	return card.NewService(repo, shared.NewScopeCheckerService(allowAllMembers{}))
}

func unpaidLine(amount float64, currency string) *transaction.Transaction {
	return &transaction.Transaction{
		Id:       ulid.Make(),
		Type:     transaction.Expense,
		Amount:   amount,
		Currency: currency,
		IsPaid:   false,
	}
}

func TestSettleInvoiceEmptyCycleIsNoop(t *testing.T) {
	t.Parallel()

	settled := false
	repo := &fakeCardRepository{
		getUnpaidFn: func(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
			return nil, nil
		},
		settleCycleFn: func(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error {
			settled = true
			return nil
		},
	}
	svc := newCardService(repo)

	payment, err := svc.SettleInvoice(context.Background(), testScope(), ulid.Make(), "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment != nil {
		t.Fatalf("expected nil payment for empty cycle, got %+v", payment)
	}
	if settled {
		t.Fatal("no settlement should be written for an empty cycle")
	}
}

func TestSettleInvoiceAggregatesUnpaidLines(t *testing.T) {
	t.Parallel()

	scope := testScope()
	cardID := ulid.Make()
	lines := []*transaction.Transaction{
		unpaidLine(0.1, "BRL"),
		unpaidLine(0.2, "BRL"),
		unpaidLine(99.99, "BRL"),
	}

	var gotPayment *transaction.Transaction
	var gotLineIDs []ulid.ULID
	repo := &fakeCardRepository{
		getUnpaidFn: func(ctx context.Context, workspaceID, id ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
			return lines, nil
		},
		settleCycleFn: func(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error {
			gotPayment = payment
			gotLineIDs = lineIDs
			return nil
		},
	}
	svc := newCardService(repo)

	payment, err := svc.SettleInvoice(context.Background(), scope, cardID, "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment == nil || gotPayment == nil {
		t.Fatal("expected a payment to be created")
	}
	if payment.Amount != 100.29 {
		t.Fatalf("expected total 100.29, got %v", payment.Amount)
	}
	if payment.Description != "Pagamento de fatura 2026-03" {
		t.Fatalf("unexpected description: %q", payment.Description)
	}
	if payment.CardCycle != "2026-03" {
		t.Fatalf("expected cycle 2026-03, got %q", payment.CardCycle)
	}
	if !payment.IsPaid {
		t.Fatal("settlement payment must be created as paid")
	}
	if payment.PaymentTransactionId != nil {
		t.Fatal("payment must not reference another payment")
	}
	if payment.CardId == nil || *payment.CardId != cardID {
		t.Fatalf("payment must reference the card, got %v", payment.CardId)
	}
	if len(gotLineIDs) != len(lines) {
		t.Fatalf("expected %d line ids, got %d", len(lines), len(gotLineIDs))
	}
	for i, line := range lines {
		if gotLineIDs[i] != line.Id {
			t.Fatalf("line %d id mismatch", i)
		}
	}
}

func TestSettleInvoiceRejectsMixedCurrencies(t *testing.T) {
	t.Parallel()

	repo := &fakeCardRepository{
		getUnpaidFn: func(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				unpaidLine(10, "BRL"),
				unpaidLine(5, "USD"),
			}, nil
		},
	}
	svc := newCardService(repo)

	_, err := svc.SettleInvoice(context.Background(), testScope(), ulid.Make(), "2026-03")
	if err == nil {
		t.Fatal("expected error for mixed currencies")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSettleInvoiceRejectsBadCycleFormat(t *testing.T) {
	t.Parallel()

	svc := newCardService(&fakeCardRepository{})

	for _, cycle := range []string{"", "2026", "2026-13", "2026-3", "03-2026"} {
		if _, err := svc.SettleInvoice(context.Background(), testScope(), ulid.Make(), cycle); err == nil {
			t.Fatalf("expected error for cycle %q", cycle)
		}
	}
}

func TestRecordPurchaseStampsCycleFromDate(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeCardRepository{
		createPurchaseFn: func(ctx context.Context, purchase *transaction.Transaction) error {
			created = purchase
			return nil
		},
	}
	svc := newCardService(repo)

	scope := testScope()
	date := time.Date(2026, time.February, 17, 10, 0, 0, 0, time.UTC)
	purchase, err := svc.RecordPurchase(context.Background(), scope, &card.PurchaseRequest{
		CardId:      ulid.Make(),
		Amount:      42.5,
		Date:        date,
		Description: "  mercado  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected purchase to be persisted")
	}
	if purchase.CardCycle != "2026-02" {
		t.Fatalf("expected cycle 2026-02, got %q", purchase.CardCycle)
	}
	if purchase.IsPaid {
		t.Fatal("purchase must start unpaid")
	}
	if purchase.Currency != "BRL" {
		t.Fatalf("expected BRL default, got %q", purchase.Currency)
	}
	if purchase.Type != transaction.Expense {
		t.Fatalf("expected expense, got %q", purchase.Type)
	}
	if purchase.Description != "mercado" {
		t.Fatalf("expected trimmed description, got %q", purchase.Description)
	}
	if purchase.WorkspaceId != scope.WorkspaceId {
		t.Fatal("purchase must carry the request workspace")
	}
}

func TestRecordPurchaseRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc := newCardService(&fakeCardRepository{})

	for _, amount := range []float64{0, -1} {
		_, err := svc.RecordPurchase(context.Background(), testScope(), &card.PurchaseRequest{
			CardId: ulid.Make(),
			Amount: amount,
		})
		if err == nil {
			t.Fatalf("expected error for amount %v", amount)
		}
	}
}

func TestGenerateManualInvoice(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeCardRepository{
		createPurchaseFn: func(ctx context.Context, purchase *transaction.Transaction) error {
			created = purchase
			return nil
		},
	}
	svc := newCardService(repo)

	payment, err := svc.GenerateManualInvoice(context.Background(), testScope(), ulid.Make(), "2026-01", 350)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected manual invoice to be persisted")
	}
	if payment.Description != "Pagamento de fatura" {
		t.Fatalf("unexpected description: %q", payment.Description)
	}
	if payment.CardCycle != "" {
		t.Fatalf("manual invoice must not carry a cycle, got %q", payment.CardCycle)
	}
	if !payment.IsPaid {
		t.Fatal("manual invoice must be created as paid")
	}
	want := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !payment.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, payment.Date)
	}

	t.Run("rejects non positive total", func(t *testing.T) {
		if _, err := svc.GenerateManualInvoice(context.Background(), testScope(), ulid.Make(), "2026-01", 0); err == nil {
			t.Fatal("expected error for zero total")
		}
	})

	t.Run("rejects bad month", func(t *testing.T) {
		if _, err := svc.GenerateManualInvoice(context.Background(), testScope(), ulid.Make(), "janeiro", 10); err == nil {
			t.Fatal("expected error for invalid month")
		}
	})
}

func TestListPurchasesValidatesCycleFilter(t *testing.T) {
	t.Parallel()

	svc := newCardService(&fakeCardRepository{})

	if _, err := svc.ListPurchases(context.Background(), testScope(), ulid.Make(), "2026/03"); err == nil {
		t.Fatal("expected error for malformed cycle filter")
	}
	if _, err := svc.ListPurchases(context.Background(), testScope(), ulid.Make(), ""); err != nil {
		t.Fatalf("empty filter must list all cycles: %v", err)
	}
}

func TestCardOperationsRequireWorkspace(t *testing.T) {
	t.Parallel()

	svc := newCardService(&fakeCardRepository{})
	scope := shared.Scope{UserId: ulid.Make()}

	_, err := svc.SettleInvoice(context.Background(), scope, ulid.Make(), "2026-03")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrNoWorkspace.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrNoWorkspace.Code, err)
	}
}
