package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bankslips/internal/timeutil"
)

const dateLayout = "2006-01-02"

// Date is a day-precision civil date in the service timezone. The wire format
// is YYYY-MM-DD; any time-of-day component received is truncated.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{timeutil.Truncate(t)}
}

// DateOf keeps the civil date exactly as carried by t, re-anchored in the
// service timezone. Used when scanning DATE columns parsed in another zone.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, timeutil.Location())}
}

func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, timeutil.Location())
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s", data)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		full, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid date %q", raw)
		}
		parsed = NewDate(full)
	}
	*d = parsed
	return nil
}

// Cents is a monetary amount in minor currency units. It is rendered as a
// string on the wire but accepts both numbers and strings on input.
type Cents int64

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(c), 10))), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid monetary amount %q", raw)
	}
	*c = Cents(value)
	return nil
}

type BankSlip struct {
	ID           string    `json:"id"`
	Customer     string    `json:"customer"`
	DueDate      Date      `json:"due_date"`
	TotalInCents Cents     `json:"total_in_cents"`
	PaymentDate  *Date     `json:"payment_date,omitempty"`
	Status       string    `json:"status"`
	LateFeeCents *Cents    `json:"late_fee_cents,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// BankslipInput is the create payload. Fields are pointers so the validator
// can tell an absent or null field from a zero value.
type BankslipInput struct {
	Customer     *string `json:"customer"`
	DueDate      *Date   `json:"due_date"`
	TotalInCents *Cents  `json:"total_in_cents"`
}

// PaymentInput is the body of a payment request.
type PaymentInput struct {
	PaymentDate *Date `json:"payment_date"`
}
