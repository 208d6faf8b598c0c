package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dbmodels "vacation-planner-backend/models/db"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBusinessDays(t *testing.T) {
	t.Run(`start after end counts zero`, func(t *testing.T) {
		require.True(t, BusinessDays(day("2025-03-10"), day("2025-03-07")).IsZero())
	})
	t.Run(`single weekday counts one`, func(t *testing.T) {
		// 2025-03-05 is a Wednesday
		require.Equal(t, int64(1), BusinessDays(day("2025-03-05"), day("2025-03-05")).IntPart())
	})
	t.Run(`single weekend day counts zero`, func(t *testing.T) {
		// 2025-03-08 is a Saturday, 2025-03-09 a Sunday
		require.True(t, BusinessDays(day("2025-03-08"), day("2025-03-08")).IsZero())
		require.True(t, BusinessDays(day("2025-03-09"), day("2025-03-09")).IsZero())
	})
	t.Run(`monday to friday counts five`, func(t *testing.T) {
		require.Equal(t, int64(5), BusinessDays(day("2025-03-03"), day("2025-03-07")).IntPart())
	})
	t.Run(`spanning a weekend adds nothing`, func(t *testing.T) {
		// Mon 2025-03-03 .. Sun 2025-03-09 has the same five weekdays
		require.Equal(t, int64(5), BusinessDays(day("2025-03-03"), day("2025-03-09")).IntPart())
	})
	t.Run(`two full weeks count ten`, func(t *testing.T) {
		require.Equal(t, int64(10), BusinessDays(day("2025-03-03"), day("2025-03-14")).IntPart())
	})
}

func TestPeriodFor(t *testing.T) {
	periods := []dbmodels.VacationPeriod{
		{BaseModel: dbmodels.BaseModel{ID: "p-2024"}, StartDate: day("2024-01-01"), EndDate: day("2024-12-31")},
		{BaseModel: dbmodels.BaseModel{ID: "p-2025"}, StartDate: day("2025-01-01"), EndDate: day("2025-12-31")},
	}
	t.Run(`date inside resolves`, func(t *testing.T) {
		p := PeriodFor(day("2025-06-15"), periods)
		require.NotNil(t, p)
		require.Equal(t, "p-2025", p.ID)
	})
	t.Run(`boundaries are inclusive`, func(t *testing.T) {
		p := PeriodFor(day("2024-01-01"), periods)
		require.NotNil(t, p)
		require.Equal(t, "p-2024", p.ID)

		p = PeriodFor(day("2024-12-31"), periods)
		require.NotNil(t, p)
		require.Equal(t, "p-2024", p.ID)
	})
	t.Run(`gap between periods resolves to none`, func(t *testing.T) {
		gapped := []dbmodels.VacationPeriod{
			{BaseModel: dbmodels.BaseModel{ID: "a"}, StartDate: day("2024-01-01"), EndDate: day("2024-06-30")},
			{BaseModel: dbmodels.BaseModel{ID: "b"}, StartDate: day("2024-09-01"), EndDate: day("2024-12-31")},
		}
		require.Nil(t, PeriodFor(day("2024-07-15"), gapped))
	})
	t.Run(`first match wins on unvalidated overlapping input`, func(t *testing.T) {
		overlapping := []dbmodels.VacationPeriod{
			{BaseModel: dbmodels.BaseModel{ID: "first"}, StartDate: day("2024-01-01"), EndDate: day("2024-12-31")},
			{BaseModel: dbmodels.BaseModel{ID: "second"}, StartDate: day("2024-06-01"), EndDate: day("2025-05-31")},
		}
		p := PeriodFor(day("2024-07-01"), overlapping)
		require.NotNil(t, p)
		require.Equal(t, "first", p.ID)
	})
}

func TestEvaluateBalance(t *testing.T) {
	defaultDays := decimal.NewFromFloat(25.0)

	t.Run(`remaining is total plus carryover minus approved`, func(t *testing.T) {
		alloc := &dbmodels.VacationAllocation{TotalDays: 25, CarriedOverDays: 5}
		decision := EvaluateBalance(alloc, decimal.Zero, decimal.NewFromInt(3), defaultDays)
		require.True(t, decision.Allowed)
		require.Equal(t, "30", decision.TotalAvailable.String())
		require.Equal(t, "30", decision.Remaining.String())
	})
	t.Run(`request over remaining is rejected`, func(t *testing.T) {
		alloc := &dbmodels.VacationAllocation{TotalDays: 25, CarriedOverDays: 5}
		decision := EvaluateBalance(alloc, decimal.NewFromInt(28), decimal.NewFromInt(5), defaultDays)
		require.False(t, decision.Allowed)
		require.Equal(t, "2", decision.Remaining.String())
	})
	t.Run(`exact balance use is allowed`, func(t *testing.T) {
		alloc := &dbmodels.VacationAllocation{TotalDays: 20, CarriedOverDays: 0}
		decision := EvaluateBalance(alloc, decimal.NewFromInt(15), decimal.NewFromInt(5), defaultDays)
		require.True(t, decision.Allowed)
		require.True(t, decision.Remaining.Equal(decimal.NewFromInt(5)))
	})
	t.Run(`missing allocation falls back to the default budget`, func(t *testing.T) {
		decision := EvaluateBalance(nil, decimal.NewFromInt(10), decimal.NewFromInt(15), defaultDays)
		require.True(t, decision.Allowed)
		require.Equal(t, "25", decision.TotalAvailable.String())
		require.Equal(t, "15", decision.Remaining.String())

		decision = EvaluateBalance(nil, decimal.NewFromInt(10), decimal.NewFromInt(16), defaultDays)
		require.False(t, decision.Allowed)
	})
	t.Run(`fractional days stay exact`, func(t *testing.T) {
		alloc := &dbmodels.VacationAllocation{TotalDays: 12.5, CarriedOverDays: 0.5}
		decision := EvaluateBalance(alloc, decimal.NewFromFloat(2.5), decimal.NewFromFloat(10.5), defaultDays)
		require.True(t, decision.Allowed)
		require.Equal(t, "10.5", decision.Remaining.String())
	})
}

func TestOverlaps(t *testing.T) {
	rng := func(start, end string) DateRange {
		return DateRange{Start: day(start), End: day(end)}
	}

	t.Run(`intersecting ranges overlap`, func(t *testing.T) {
		require.True(t, Overlaps(rng("2025-04-11", "2025-04-13"), []DateRange{rng("2025-04-10", "2025-04-12")}))
	})
	t.Run(`contained range overlaps`, func(t *testing.T) {
		require.True(t, Overlaps(rng("2025-04-11", "2025-04-11"), []DateRange{rng("2025-04-10", "2025-04-14")}))
	})
	t.Run(`touching boundaries overlap`, func(t *testing.T) {
		// a shared single day is a double booking
		require.True(t, Overlaps(rng("2025-04-12", "2025-04-15"), []DateRange{rng("2025-04-10", "2025-04-12")}))
	})
	t.Run(`adjacent but disjoint ranges do not overlap`, func(t *testing.T) {
		require.False(t, Overlaps(rng("2025-04-13", "2025-04-15"), []DateRange{rng("2025-04-10", "2025-04-12")}))
	})
	t.Run(`empty existing set never overlaps`, func(t *testing.T) {
		require.False(t, Overlaps(rng("2025-04-10", "2025-04-12"), nil))
	})
}

func TestPeriodsOverlap(t *testing.T) {
	periods := []dbmodels.VacationPeriod{
		{BaseModel: dbmodels.BaseModel{ID: "p1"}, StartDate: day("2024-01-01"), EndDate: day("2024-12-31")},
	}
	t.Run(`intersecting period is rejected`, func(t *testing.T) {
		require.True(t, PeriodsOverlap(day("2024-12-01"), day("2025-11-30"), periods, ""))
	})
	t.Run(`disjoint period is accepted`, func(t *testing.T) {
		require.False(t, PeriodsOverlap(day("2025-01-01"), day("2025-12-31"), periods, ""))
	})
	t.Run(`period being updated is skipped`, func(t *testing.T) {
		require.False(t, PeriodsOverlap(day("2024-02-01"), day("2024-11-30"), periods, "p1"))
	})
}
