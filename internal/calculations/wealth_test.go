package calculations

import (
	"math"
	"testing"
)

func TestWealthProjection(t *testing.T) {
	t.Run("empty schedule yields empty projection", func(t *testing.T) {
		rows := WealthProjection(50000, nil, 1200, 1.0, 200000)
		if len(rows) != 0 {
			t.Errorf("expected empty projection, got %d rows", len(rows))
		}

		rows = WealthProjection(50000, []AmortizationRow{}, 1200, 1.0, 200000)
		if len(rows) != 0 {
			t.Errorf("expected empty projection, got %d rows", len(rows))
		}
	})

	t.Run("appreciation compounds from year one", func(t *testing.T) {
		schedule := AmortizationSchedule(100000, 0, 10, 3)
		rows := WealthProjection(50000, schedule, 1200, 1.0, 200000)

		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		// The first row already carries one year of appreciation.
		if rows[0].PropertyValue != 202000 {
			t.Errorf("expected year-1 value 202000, got %f", rows[0].PropertyValue)
		}
		if rows[1].PropertyValue != 204020 {
			t.Errorf("expected year-2 value 204020, got %f", rows[1].PropertyValue)
		}
		if math.Abs(rows[2].PropertyValue-206060.20) > 0.01 {
			t.Errorf("expected year-3 value 206060.20, got %f", rows[2].PropertyValue)
		}
	})

	t.Run("net equity and total wealth", func(t *testing.T) {
		schedule := AmortizationSchedule(100000, 0, 10, 3)
		rows := WealthProjection(50000, schedule, 1200, 1.0, 200000)

		if rows[0].RemainingDebt != 90000 {
			t.Errorf("expected year-1 debt 90000, got %f", rows[0].RemainingDebt)
		}
		if rows[0].NetEquity != 112000 {
			t.Errorf("expected year-1 net equity 112000, got %f", rows[0].NetEquity)
		}
		if rows[0].CumulativeCashFlow != 1200 {
			t.Errorf("expected year-1 cumulative cash flow 1200, got %f", rows[0].CumulativeCashFlow)
		}
		if rows[0].TotalWealth != 113200 {
			t.Errorf("expected year-1 total wealth 113200, got %f", rows[0].TotalWealth)
		}
		if rows[2].CumulativeCashFlow != 3600 {
			t.Errorf("expected year-3 cumulative cash flow 3600, got %f", rows[2].CumulativeCashFlow)
		}
	})

	t.Run("missing price falls back to principal plus equity", func(t *testing.T) {
		schedule := AmortizationSchedule(100000, 0, 10, 3)
		rows := WealthProjection(50000, schedule, 0, 0, 0)

		// Principal reconstructed from the first row: 90000 + 10000.
		if rows[0].PropertyValue != 150000 {
			t.Errorf("expected starting value 150000, got %f", rows[0].PropertyValue)
		}
		for _, row := range rows {
			if row.PropertyValue != 150000 {
				t.Errorf("value must stay flat at 0%% appreciation, got %f in year %d", row.PropertyValue, row.Year)
			}
		}
	})

	t.Run("years mirror the schedule", func(t *testing.T) {
		schedule := AmortizationSchedule(240000, 3.5, 2.0, 30)
		rows := WealthProjection(60000, schedule, -1758, 1.5, 300000)

		if len(rows) != len(schedule) {
			t.Fatalf("projection length %d does not match schedule length %d", len(rows), len(schedule))
		}
		for i := range rows {
			if rows[i].Year != schedule[i].Year {
				t.Errorf("year mismatch at row %d", i)
			}
			if rows[i].RemainingDebt != schedule[i].RemainingBalance {
				t.Errorf("debt mismatch at year %d", rows[i].Year)
			}
		}
	})
}
