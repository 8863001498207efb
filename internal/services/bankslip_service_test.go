package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankslips/internal/fsm"
	"bankslips/internal/models"
	"bankslips/internal/repositories"
)

func newTestService(today string) *BankslipService {
	now, err := models.ParseDate(today)
	if err != nil {
		panic(err)
	}
	return &BankslipService{
		BankslipRepo: repositories.NewMemoryBankslipRepository(),
		Now:          func() time.Time { return now.Time },
	}
}

func candidate(customer string, due string, total int64) models.BankslipInput {
	d, err := models.ParseDate(due)
	if err != nil {
		panic(err)
	}
	c := models.Cents(total)
	return models.BankslipInput{Customer: &customer, DueDate: &d, TotalInCents: &c}
}

func TestCreateBankslip(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	slip, err := svc.CreateBankslip(ctx, candidate("Trillian Company", "2018-01-01", 100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slip.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if slip.Status != fsm.StatusPending {
		t.Fatalf("expected status %s got %s", fsm.StatusPending, slip.Status)
	}

	stored, err := svc.GetBankslipByID(ctx, slip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Customer != "Trillian Company" || stored.DueDate.String() != "2018-01-01" || stored.TotalInCents != 100000 {
		t.Fatalf("stored slip does not match candidate: %+v", stored)
	}
}

func TestCreateBankslipValidation(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	blank := ""
	due, _ := models.ParseDate("2018-01-01")
	total := models.Cents(100000)
	negative := models.Cents(-1)
	zero := models.Cents(0)

	cases := []struct {
		name    string
		input   models.BankslipInput
		wantErr error
	}{
		{"missing customer", models.BankslipInput{DueDate: &due, TotalInCents: &total}, models.ErrInvalidBankslip},
		{"blank customer", models.BankslipInput{Customer: &blank, DueDate: &due, TotalInCents: &total}, models.ErrInvalidBankslip},
		{"missing due date", candidateWithout("due_date"), models.ErrInvalidBankslip},
		{"missing total", candidateWithout("total_in_cents"), models.ErrInvalidBankslip},
		{"negative total", func() models.BankslipInput {
			in := candidate("Trillian Company", "2018-01-01", 0)
			in.TotalInCents = &negative
			return in
		}(), models.ErrInvalidBankslip},
		{"zero total accepted", func() models.BankslipInput {
			in := candidate("Trillian Company", "2018-01-01", 0)
			in.TotalInCents = &zero
			return in
		}(), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBankslip(ctx, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v got %v", tc.wantErr, err)
			}
		})
	}
}

func candidateWithout(field string) models.BankslipInput {
	in := candidate("Trillian Company", "2018-01-01", 100000)
	switch field {
	case "due_date":
		in.DueDate = nil
	case "total_in_cents":
		in.TotalInCents = nil
	}
	return in
}

func TestGetBankslipByIDAttachesLateFee(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	cases := []struct {
		name string
		due  string
		want models.Cents
	}{
		{"not yet due", "2018-07-10", 0},
		{"due today", "2018-07-01", 0},
		{"five days overdue", "2018-06-26", 2500},
		{"thirty days overdue", "2018-06-01", 30000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slip, err := svc.CreateBankslip(ctx, candidate("Trillian Company", tc.due, 100000))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			read, err := svc.GetBankslipByID(ctx, slip.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if read.LateFeeCents == nil || *read.LateFeeCents != tc.want {
				t.Fatalf("expected late fee %d got %v", tc.want, read.LateFeeCents)
			}
		})
	}
}

func TestGetBankslipsInsertionOrder(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	first, _ := svc.CreateBankslip(ctx, candidate("Ford Prefect Company", "2018-01-01", 100000))
	second, _ := svc.CreateBankslip(ctx, candidate("Zaphod Company", "2018-02-01", 200000))

	slips, err := svc.GetBankslips(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slips) != 2 {
		t.Fatalf("expected 2 slips got %d", len(slips))
	}
	if slips[0].ID != first.ID || slips[1].ID != second.ID {
		t.Fatal("expected slips in insertion order")
	}
	if slips[0].LateFeeCents == nil || slips[1].LateFeeCents == nil {
		t.Fatal("expected late fee computed for every listed slip")
	}
}

func TestPayBankslip(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	slip, _ := svc.CreateBankslip(ctx, candidate("Trillian Company", "2018-01-01", 100000))
	paymentDate, _ := models.ParseDate("2018-06-30")

	if err := svc.PayBankslip(ctx, slip.ID, paymentDate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paid, _ := svc.GetBankslipByID(ctx, slip.ID)
	if paid.Status != fsm.StatusPaid {
		t.Fatalf("expected status %s got %s", fsm.StatusPaid, paid.Status)
	}
	if paid.PaymentDate == nil || paid.PaymentDate.String() != "2018-06-30" {
		t.Fatalf("expected payment date 2018-06-30 got %v", paid.PaymentDate)
	}

	if err := svc.PayBankslip(ctx, slip.ID, paymentDate); !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on re-pay, got %v", err)
	}
	if err := svc.CancelBankslip(ctx, slip.ID); !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState canceling a paid slip, got %v", err)
	}
}

func TestPayBankslipNotFound(t *testing.T) {
	svc := newTestService("2018-07-01")
	paymentDate, _ := models.ParseDate("2018-06-30")

	err := svc.PayBankslip(context.Background(), "1", paymentDate)
	if !errors.Is(err, models.ErrBankslipNotFound) {
		t.Fatalf("expected ErrBankslipNotFound got %v", err)
	}
}

func TestCancelBankslip(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	slip, _ := svc.CreateBankslip(ctx, candidate("Trillian Company", "2018-01-01", 100000))

	if err := svc.CancelBankslip(ctx, slip.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canceled, _ := svc.GetBankslipByID(ctx, slip.ID)
	if canceled.Status != fsm.StatusCanceled {
		t.Fatalf("expected status %s got %s", fsm.StatusCanceled, canceled.Status)
	}
	if canceled.PaymentDate != nil {
		t.Fatal("canceled slip must not carry a payment date")
	}

	paymentDate, _ := models.ParseDate("2018-06-30")
	if err := svc.PayBankslip(ctx, slip.ID, paymentDate); !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState paying a canceled slip, got %v", err)
	}
}

func TestDeleteAllBankslips(t *testing.T) {
	svc := newTestService("2018-07-01")
	ctx := context.Background()

	svc.CreateBankslip(ctx, candidate("Trillian Company", "2018-01-01", 100000))
	if err := svc.DeleteAllBankslips(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slips, err := svc.GetBankslips(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slips) != 0 {
		t.Fatalf("expected empty store got %d slips", len(slips))
	}
}
