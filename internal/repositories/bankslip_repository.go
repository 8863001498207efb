package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"bankslips/internal/models"
)

type BankslipRepository struct {
	DB *sql.DB
}

func (r *BankslipRepository) GetBankslipByID(ctx context.Context, id string) (models.BankSlip, error) {
	query := `SELECT id, customer, due_date, total_in_cents, payment_date, status, created_at FROM bankslips WHERE id = ?`
	slip, err := scanBankslip(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BankSlip{}, models.ErrBankslipNotFound
	}
	return slip, err
}

func (r *BankslipRepository) GetBankslips(ctx context.Context) ([]models.BankSlip, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, customer, due_date, total_in_cents, payment_date, status, created_at FROM bankslips ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []models.BankSlip
	for rows.Next() {
		slip, err := scanBankslip(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, rows.Err()
}

// SaveBankslip inserts the slip when it carries no id yet, assigning one, and
// updates the stored row otherwise. Returns the canonical stored form.
func (r *BankslipRepository) SaveBankslip(ctx context.Context, slip models.BankSlip) (models.BankSlip, error) {
	if slip.ID == "" {
		slip.ID = uuid.NewString()
		slip.CreatedAt = time.Now()
		query := `INSERT INTO bankslips (id, customer, due_date, total_in_cents, payment_date, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err := r.DB.ExecContext(ctx, query,
			slip.ID, slip.Customer, slip.DueDate.String(), int64(slip.TotalInCents), paymentDateValue(slip.PaymentDate), slip.Status, slip.CreatedAt)
		if err != nil {
			return models.BankSlip{}, err
		}
		return slip, nil
	}
	query := `UPDATE bankslips SET customer = ?, due_date = ?, total_in_cents = ?, payment_date = ?, status = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query,
		slip.Customer, slip.DueDate.String(), int64(slip.TotalInCents), paymentDateValue(slip.PaymentDate), slip.Status, slip.ID)
	if err != nil {
		return models.BankSlip{}, err
	}
	return slip, nil
}

func (r *BankslipRepository) DeleteAllBankslips(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM bankslips`)
	return err
}

func paymentDateValue(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBankslip(row rowScanner) (models.BankSlip, error) {
	var slip models.BankSlip
	var dueDate time.Time
	var paymentDate sql.NullTime
	var total int64
	err := row.Scan(&slip.ID, &slip.Customer, &dueDate, &total, &paymentDate, &slip.Status, &slip.CreatedAt)
	if err != nil {
		return models.BankSlip{}, err
	}
	slip.DueDate = models.DateOf(dueDate)
	slip.TotalInCents = models.Cents(total)
	if paymentDate.Valid {
		paid := models.DateOf(paymentDate.Time)
		slip.PaymentDate = &paid
	}
	return slip, nil
}
