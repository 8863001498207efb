package latefee

import (
	"time"

	"bankslips/internal/timeutil"
)

// Daily rates expressed per mille so the fee can be computed in integer cents.
const (
	mildRatePerMille      = 5  // 0.5% per day, overdue up to 10 days
	delinquentPerMille    = 10 // 1.0% per day, overdue more than 10 days
	delinquencyCutoffDays = 10
)

// Fee calculates the late-payment fee in cents for a slip with the given due
// date and principal, as of today. Slips due today or in the future carry no
// fee. Past the delinquency cutoff the higher rate applies to the entire
// overdue period. Rounding is half-up to the nearest cent.
func Fee(dueDate, today time.Time, principalCents int64) int64 {
	days := timeutil.DaysBetween(dueDate, today)
	if days <= 0 || principalCents <= 0 {
		return 0
	}
	rate := int64(mildRatePerMille)
	if days > delinquencyCutoffDays {
		rate = delinquentPerMille
	}
	return (principalCents*rate*int64(days) + 500) / 1000
}
