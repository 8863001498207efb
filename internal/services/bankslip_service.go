package services

import (
	"context"
	"strings"
	"time"

	"bankslips/internal/fsm"
	"bankslips/internal/latefee"
	"bankslips/internal/models"
	"bankslips/internal/timeutil"
)

// BankslipStore is the persistence capability the service consumes.
type BankslipStore interface {
	GetBankslipByID(ctx context.Context, id string) (models.BankSlip, error)
	GetBankslips(ctx context.Context) ([]models.BankSlip, error)
	SaveBankslip(ctx context.Context, slip models.BankSlip) (models.BankSlip, error)
	DeleteAllBankslips(ctx context.Context) error
}

type BankslipService struct {
	BankslipRepo BankslipStore
	// Now overrides the service clock. Nil means current time in the service timezone.
	Now func() time.Time
}

func (s *BankslipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return timeutil.Now()
}

func (s *BankslipService) CreateBankslip(ctx context.Context, input models.BankslipInput) (models.BankSlip, error) {
	if err := validateCandidate(input); err != nil {
		return models.BankSlip{}, err
	}
	slip := models.BankSlip{
		Customer:     strings.TrimSpace(*input.Customer),
		DueDate:      *input.DueDate,
		TotalInCents: *input.TotalInCents,
		Status:       fsm.StatusPending,
	}
	return s.BankslipRepo.SaveBankslip(ctx, slip)
}

// GetBankslipByID reads a single slip with its late fee computed as of the
// service clock. The fee is never persisted.
func (s *BankslipService) GetBankslipByID(ctx context.Context, id string) (models.BankSlip, error) {
	slip, err := s.BankslipRepo.GetBankslipByID(ctx, id)
	if err != nil {
		return models.BankSlip{}, err
	}
	return s.withLateFee(slip), nil
}

func (s *BankslipService) GetBankslips(ctx context.Context) ([]models.BankSlip, error) {
	slips, err := s.BankslipRepo.GetBankslips(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slips {
		slips[i] = s.withLateFee(slips[i])
	}
	return slips, nil
}

func (s *BankslipService) PayBankslip(ctx context.Context, id string, paymentDate models.Date) error {
	slip, err := s.BankslipRepo.GetBankslipByID(ctx, id)
	if err != nil {
		return err
	}
	if !fsm.CanTransition(slip.Status, fsm.StatusPaid) {
		return models.ErrInvalidState
	}
	slip.Status = fsm.StatusPaid
	slip.PaymentDate = &paymentDate
	_, err = s.BankslipRepo.SaveBankslip(ctx, slip)
	return err
}

func (s *BankslipService) CancelBankslip(ctx context.Context, id string) error {
	slip, err := s.BankslipRepo.GetBankslipByID(ctx, id)
	if err != nil {
		return err
	}
	if !fsm.CanTransition(slip.Status, fsm.StatusCanceled) {
		return models.ErrInvalidState
	}
	slip.Status = fsm.StatusCanceled
	_, err = s.BankslipRepo.SaveBankslip(ctx, slip)
	return err
}

func (s *BankslipService) DeleteAllBankslips(ctx context.Context) error {
	return s.BankslipRepo.DeleteAllBankslips(ctx)
}

func (s *BankslipService) withLateFee(slip models.BankSlip) models.BankSlip {
	fee := models.Cents(latefee.Fee(slip.DueDate.Time, s.now(), int64(slip.TotalInCents)))
	slip.LateFeeCents = &fee
	return slip
}

// validateCandidate checks the creation invariants. A zero total is legal;
// a negative one is not.
func validateCandidate(input models.BankslipInput) error {
	if input.Customer == nil || strings.TrimSpace(*input.Customer) == "" {
		return models.ErrInvalidBankslip
	}
	if input.DueDate == nil || input.DueDate.IsZero() {
		return models.ErrInvalidBankslip
	}
	if input.TotalInCents == nil || *input.TotalInCents < 0 {
		return models.ErrInvalidBankslip
	}
	return nil
}
