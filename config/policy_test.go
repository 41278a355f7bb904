package config_test

import (
	"testing"
	"time"

	"github.com/campuslib/library-service/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPolicy_OverdueDays(t *testing.T) {
	t.Parallel()
	p := config.Policy{LoanPeriodDays: 14}
	due := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{name: "before due", asOf: due.AddDate(0, 0, -3), want: 0},
		{name: "exactly due", asOf: due, want: 0},
		{name: "six days late", asOf: due.AddDate(0, 0, 6), want: 6},
		{name: "partial seventh day still six", asOf: due.AddDate(0, 0, 6).Add(12 * time.Hour), want: 6},
		{name: "one hour late is zero whole days", asOf: due.Add(time.Hour), want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, p.OverdueDays(due, tt.asOf))
		})
	}
}

func TestPolicy_OverdueFine(t *testing.T) {
	t.Parallel()
	p := config.Policy{FineDailyRate: decimal.RequireFromString("5")}

	require.True(t, p.OverdueFine(0).IsZero())
	require.True(t, p.OverdueFine(-1).IsZero())
	require.True(t, decimal.RequireFromString("30").Equal(p.OverdueFine(6)))

	p.FineDailyRate = decimal.RequireFromString("2.50")
	require.True(t, decimal.RequireFromString("7.50").Equal(p.OverdueFine(3)))
}

func TestPolicy_LoanPeriod(t *testing.T) {
	t.Parallel()
	p := config.Policy{LoanPeriodDays: 14}
	require.Equal(t, 14*24*time.Hour, p.LoanPeriod())
}
