package generator

import (
	"testing"
	"time"

	"github.com/gorditas/config"
	"github.com/gorditas/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testConfig(orders, expenses int, seed int64) config.GeneratorConfig {
	return config.GeneratorConfig{
		OrderCount:   orders,
		ExpenseCount: expenses,
		WindowDays:   30,
		FolioPrefix:  "GC",
		FolioWidth:   4,
		Seed:         seed,
	}
}

func runGeneration(t *testing.T, cfg config.GeneratorConfig, catalog *Catalog) *database.MemoryStore {
	t.Helper()
	store := database.NewMemoryStore()
	gen := NewAt(cfg, catalog, store, testNow)
	require.NoError(t, gen.Run())
	return store
}

// orderLineSum adds up every line amount reachable from the given order.
func orderLineSum(store *database.MemoryStore, orderID uint) float64 {
	var sum float64
	for _, line := range store.ProductLines() {
		if line.OrderID == orderID {
			sum += line.Amount
		}
	}
	suborderIDs := make(map[uint]bool)
	for _, sub := range store.Suborders() {
		if sub.OrderID == orderID {
			suborderIDs[sub.SuborderID] = true
		}
	}
	dishLineIDs := make(map[uint]bool)
	for _, line := range store.DishLines() {
		if suborderIDs[line.SuborderID] {
			sum += line.Amount
			dishLineIDs[line.LineID] = true
		}
	}
	for _, line := range store.ExtraLines() {
		if dishLineIDs[line.DishLineID] {
			sum += line.Amount
		}
	}
	return sum
}

func TestRunCounts(t *testing.T) {
	store := runGeneration(t, testConfig(25, 10, 42), DefaultCatalog())

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 25, counts.Orders)
	assert.EqualValues(t, 25, counts.Suborders, "exactly one suborder per order")
	assert.EqualValues(t, 10, counts.Expenses)
	assert.GreaterOrEqual(t, counts.ProductLines, int64(25), "at least one product line per order")
	assert.GreaterOrEqual(t, counts.DishLines, int64(25), "at least one dish line per order")
}

func TestRunTotalConsistency(t *testing.T) {
	store := runGeneration(t, testConfig(50, 0, 7), DefaultCatalog())

	subByOrder := make(map[uint]float64)
	for _, sub := range store.Suborders() {
		subByOrder[sub.OrderID] = sub.Total
	}

	for _, order := range store.Orders() {
		lineSum := orderLineSum(store, order.OrderID)
		assert.InDelta(t, lineSum, order.Total, 1e-9, "order %s total diverges from its lines", order.Folio)
		assert.InDelta(t, order.Total, subByOrder[order.OrderID], 1e-9, "order %s suborder total diverges", order.Folio)
		assert.Greater(t, order.Total, 0.0, "order %s has no priced lines", order.Folio)
	}
}

func TestRunReferentialIntegrity(t *testing.T) {
	store := runGeneration(t, testConfig(40, 20, 99), DefaultCatalog())

	typeIDs := make(map[uint]bool)
	for _, ot := range store.OrderTypes() {
		typeIDs[ot.OrderTypeID] = true
	}
	tableIDs := make(map[uint]bool)
	for _, tb := range store.Tables() {
		tableIDs[tb.TableID] = true
	}
	dishIDs := make(map[uint]bool)
	stewByDish := make(map[uint]uint)
	for _, d := range store.Dishes() {
		dishIDs[d.DishID] = true
		stewByDish[d.DishID] = d.StewID
	}
	stewIDs := make(map[uint]bool)
	for _, st := range store.Stews() {
		stewIDs[st.StewID] = true
	}
	productIDs := make(map[uint]bool)
	for _, p := range store.Products() {
		productIDs[p.ProductID] = true
	}
	extraIDs := make(map[uint]bool)
	for _, e := range store.Extras() {
		extraIDs[e.ExtraID] = true
	}
	categoryIDs := make(map[uint]bool)
	for _, c := range store.ExpenseCategories() {
		categoryIDs[c.CategoryID] = true
	}

	for _, order := range store.Orders() {
		assert.True(t, typeIDs[order.OrderTypeID], "order %s has dangling type id", order.Folio)
		if order.TableID != nil {
			assert.True(t, tableIDs[*order.TableID], "order %s has dangling table id", order.Folio)
		}
	}
	for _, line := range store.ProductLines() {
		assert.True(t, productIDs[line.ProductID], "product line %d dangling", line.LineID)
	}
	for _, line := range store.DishLines() {
		require.True(t, dishIDs[line.DishID], "dish line %d dangling", line.LineID)
		assert.True(t, stewIDs[line.StewID], "dish line %d stew dangling", line.LineID)
		assert.Equal(t, stewByDish[line.DishID], line.StewID, "dish line %d stew differs from catalog pairing", line.LineID)
	}
	for _, line := range store.ExtraLines() {
		assert.True(t, extraIDs[line.ExtraID], "extra line %d dangling", line.LineID)
	}
	for _, expense := range store.Expenses() {
		assert.True(t, categoryIDs[expense.CategoryID], "expense %d dangling category", expense.ExpenseID)
	}
}

func TestRunRepeatableAggregates(t *testing.T) {
	cfg := testConfig(30, 15, 1234)

	store := database.NewMemoryStore()
	require.NoError(t, NewAt(cfg, DefaultCatalog(), store, testNow).Run())
	firstCounts, err := store.Counts()
	require.NoError(t, err)
	firstTotal := sumOrderTotals(store)
	firstStatus, err := store.OrdersByStatus()
	require.NoError(t, err)

	// Second run wipes and regenerates on the same store with the same seed.
	require.NoError(t, NewAt(cfg, DefaultCatalog(), store, testNow).Run())
	secondCounts, err := store.Counts()
	require.NoError(t, err)
	secondTotal := sumOrderTotals(store)
	secondStatus, err := store.OrdersByStatus()
	require.NoError(t, err)

	assert.Equal(t, firstCounts, secondCounts)
	assert.InDelta(t, firstTotal, secondTotal, 1e-9)
	assert.Equal(t, firstStatus, secondStatus)
}

func sumOrderTotals(store *database.MemoryStore) float64 {
	var sum float64
	for _, order := range store.Orders() {
		sum += order.Total
	}
	return sum
}
