// Package engine holds the pure decision rules for vacation requests:
// business-day counting, period resolution, balance evaluation and
// interval overlap. Nothing here touches the database.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	dbmodels "vacation-planner-backend/models/db"
)

// BusinessDays counts the Monday-Friday days in [start, end], both ends
// inclusive. A range with start after end counts as zero, not an error.
func BusinessDays(start, end time.Time) decimal.Decimal {
	if start.After(end) {
		return decimal.Zero
	}
	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		switch current.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return decimal.NewFromInt(int64(count))
}

// PeriodFor returns the first period whose [StartDate, EndDate] contains the
// date. Company periods are kept disjoint by the period handler, so at most
// one match exists; for unvalidated input the first match in slice order
// wins. Returns nil when no period covers the date.
func PeriodFor(date time.Time, periods []dbmodels.VacationPeriod) *dbmodels.VacationPeriod {
	for i := range periods {
		if periods[i].Contains(date) {
			return &periods[i]
		}
	}
	return nil
}

// BalanceDecision is the outcome of evaluating a request against a balance.
type BalanceDecision struct {
	Allowed        bool
	TotalAvailable decimal.Decimal
	Remaining      decimal.Decimal
}

// EvaluateBalance decides whether the requested amount of days fits the
// remaining balance. When no allocation exists the defaultDays fallback
// stands in for the total, so unprovisioned users are not blocked.
// Only approved days reduce the balance; spending it to exactly zero is allowed.
func EvaluateBalance(allocation *dbmodels.VacationAllocation, approvedDays, requestedDays, defaultDays decimal.Decimal) BalanceDecision {
	total := defaultDays
	if allocation != nil {
		total = decimal.NewFromFloat(allocation.TotalDays).Add(decimal.NewFromFloat(allocation.CarriedOverDays))
	}
	remaining := total.Sub(approvedDays)
	return BalanceDecision{
		Allowed:        requestedDays.LessThanOrEqual(remaining),
		TotalAvailable: total,
		Remaining:      remaining,
	}
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Intersects reports whether two closed ranges share at least one day.
// Touching boundaries count: the same day cannot be booked twice.
func (r DateRange) Intersects(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Overlaps reports whether the candidate range intersects any of the
// existing ranges. Status filtering (e.g. dropping cancelled requests)
// is the caller's concern; this is a pure interval primitive.
func Overlaps(candidate DateRange, existing []DateRange) bool {
	for _, rng := range existing {
		if candidate.Intersects(rng) {
			return true
		}
	}
	return false
}

// PeriodsOverlap reports whether a prospective period [start, end] would
// intersect any of the given periods. Used by the admin period handler to
// keep company periods disjoint; skipID excludes the period being updated.
func PeriodsOverlap(start, end time.Time, periods []dbmodels.VacationPeriod, skipID string) bool {
	candidate := DateRange{Start: start, End: end}
	for _, p := range periods {
		if p.ID == skipID {
			continue
		}
		if candidate.Intersects(DateRange{Start: p.StartDate, End: p.EndDate}) {
			return true
		}
	}
	return false
}
