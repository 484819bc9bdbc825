package generator

import (
	"fmt"
	"testing"

	"github.com/gorditas/config"
	"github.com/gorditas/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpensePayrollRange(t *testing.T) {
	catalog := DefaultCatalog()
	catalog.ExpenseCategories = []string{"Payroll"}
	store := runGeneration(t, testConfig(0, 1200, 77), catalog)

	expenses := store.Expenses()
	require.Len(t, expenses, 1200)

	low, high := expenses[0].Amount, expenses[0].Amount
	for _, expense := range expenses {
		require.GreaterOrEqual(t, expense.Amount, 2000.0)
		require.LessOrEqual(t, expense.Amount, 6000.0)
		if expense.Amount < low {
			low = expense.Amount
		}
		if expense.Amount > high {
			high = expense.Amount
		}
	}
	// Over 1200 samples the range should be well covered near both bounds.
	assert.Less(t, low, 2200.0, "lower region of payroll range never sampled")
	assert.Greater(t, high, 5800.0, "upper region of payroll range never sampled")
}

func TestExpenseCategoryRanges(t *testing.T) {
	catalog := DefaultCatalog()
	store := runGeneration(t, testConfig(0, 500, 23), catalog)

	categoryByID := make(map[uint]string)
	for _, c := range store.ExpenseCategories() {
		categoryByID[c.CategoryID] = c.Name
	}

	for _, expense := range store.Expenses() {
		name := categoryByID[expense.CategoryID]
		amountRange, ok := catalog.ExpenseRanges[name]
		require.True(t, ok, "expense %d has unconfigured category %q", expense.ExpenseID, name)
		assert.GreaterOrEqual(t, expense.Amount, float64(amountRange.Low))
		assert.LessOrEqual(t, expense.Amount, float64(amountRange.High))
	}
}

func TestExpenseDescription(t *testing.T) {
	store := runGeneration(t, testConfig(0, 50, 19), DefaultCatalog())

	for _, expense := range store.Expenses() {
		want := fmt.Sprintf("%s - %s", expense.Name, expense.SpentAt.Format("2006-01-02"))
		assert.Equal(t, want, expense.Description)
	}
}

func TestExpenseUnknownCategoryFails(t *testing.T) {
	catalog := DefaultCatalog()
	catalog.ExpenseCategories = []string{"Franchise fees"}
	gen := NewAt(testConfig(0, 5, 42), catalog, database.NewMemoryStore(), testNow)
	err := gen.Run()
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestExpenseRangesOverridable(t *testing.T) {
	catalog := DefaultCatalog()
	catalog.ExpenseCategories = []string{"Ingredients"}
	catalog.ExpenseNames = map[string][]string{"Ingredients": {"Masa"}}
	catalog.ExpenseRanges = map[string]config.AmountRange{"Ingredients": {Low: 10, High: 20}}
	store := runGeneration(t, testConfig(0, 100, 9), catalog)

	for _, expense := range store.Expenses() {
		assert.Equal(t, "Masa", expense.Name)
		assert.GreaterOrEqual(t, expense.Amount, 10.0)
		assert.LessOrEqual(t, expense.Amount, 20.0)
	}
}

func TestExpensesIndependentOfOrders(t *testing.T) {
	store := runGeneration(t, testConfig(0, 30, 55), DefaultCatalog())

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.Orders)
	assert.EqualValues(t, 30, counts.Expenses)
	for _, expense := range store.Expenses() {
		assert.NotEmpty(t, expense.Name)
		assert.Greater(t, expense.Amount, 0.0)
	}
}
