package timeutil

import "time"

var serviceLocation = loadLocation("America/Sao_Paulo")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("America/Sao_Paulo", -3*60*60)
	}
	return loc
}

// SetZone switches the service timezone. Intended to be called once at startup.
func SetZone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	serviceLocation = loc
	return nil
}

// Now returns the current time in the service timezone.
func Now() time.Time {
	return time.Now().In(serviceLocation)
}

// Location returns the service timezone instance.
func Location() *time.Location {
	return serviceLocation
}

// Truncate drops the time-of-day component, keeping the civil date in the service timezone.
func Truncate(t time.Time) time.Time {
	y, m, d := t.In(serviceLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, serviceLocation)
}

// DaysBetween returns the number of whole days from a to b at day granularity.
// The result is negative when b falls on an earlier date than a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(serviceLocation).Date()
	by, bm, bd := b.In(serviceLocation).Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
