package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Generator.OrderCount)
	assert.Equal(t, 40, cfg.Generator.ExpenseCount)
	assert.Equal(t, 30, cfg.Generator.WindowDays)
	assert.Equal(t, "GC", cfg.Generator.FolioPrefix)
	assert.Equal(t, 4, cfg.Generator.FolioWidth)
	assert.NotZero(t, cfg.Generator.Seed, "seed falls back to a time-based value")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ORDER_COUNT", "10")
	t.Setenv("EXPENSE_COUNT", "5")
	t.Setenv("WINDOW_DAYS", "7")
	t.Setenv("FOLIO_PREFIX", "ORD")
	t.Setenv("FOLIO_WIDTH", "6")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Generator.OrderCount)
	assert.Equal(t, 5, cfg.Generator.ExpenseCount)
	assert.Equal(t, 7, cfg.Generator.WindowDays)
	assert.Equal(t, "ORD", cfg.Generator.FolioPrefix)
	assert.Equal(t, 6, cfg.Generator.FolioWidth)
	assert.EqualValues(t, 42, cfg.Generator.Seed)
}

func TestLoadRejectsBadCounts(t *testing.T) {
	t.Setenv("WINDOW_DAYS", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestWindow(t *testing.T) {
	cfg := GeneratorConfig{WindowDays: 30}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	start, end := cfg.Window(now)
	assert.True(t, end.Equal(now))
	assert.True(t, start.Equal(now.AddDate(0, 0, -30)))
}

func TestExpenseRangesCoverDefaults(t *testing.T) {
	for _, name := range []string{"Supplies", "Utilities", "Payroll", "Maintenance", "Marketing", "Other"} {
		amountRange, ok := ExpenseRanges[name]
		require.True(t, ok, "missing range for %s", name)
		assert.LessOrEqual(t, amountRange.Low, amountRange.High)
		assert.Greater(t, amountRange.Low, 0)
	}
}
