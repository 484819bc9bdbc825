package database

import (
	"fmt"
	"testing"

	"github.com/gorditas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAssignsSequentialIDs(t *testing.T) {
	store := NewMemoryStore()

	first := &models.Order{Folio: "GC0001", Status: models.StatusReceived}
	second := &models.Order{Folio: "GC0002", Status: models.StatusPaid}
	require.NoError(t, store.InsertOrder(first))
	require.NoError(t, store.InsertOrder(second))

	assert.EqualValues(t, 1, first.OrderID)
	assert.EqualValues(t, 2, second.OrderID)
}

func TestMemoryStoreUpdateTotals(t *testing.T) {
	store := NewMemoryStore()

	order := &models.Order{Folio: "GC0001", Status: models.StatusReceived}
	require.NoError(t, store.InsertOrder(order))
	suborder := &models.Suborder{OrderID: order.OrderID}
	require.NoError(t, store.InsertSuborder(suborder))

	require.NoError(t, store.UpdateOrderTotal(order.OrderID, 125.5))
	require.NoError(t, store.UpdateSuborderTotal(suborder.SuborderID, 125.5))

	assert.Equal(t, 125.5, store.Orders()[0].Total)
	assert.Equal(t, 125.5, store.Suborders()[0].Total)
}

func TestMemoryStoreDeleteAllResetsIDs(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InsertOrder(&models.Order{Folio: "GC0001", Status: models.StatusReceived}))
	require.NoError(t, store.DeleteAll())

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.Orders)

	order := &models.Order{Folio: "GC0001", Status: models.StatusReceived}
	require.NoError(t, store.InsertOrder(order))
	assert.EqualValues(t, 1, order.OrderID, "id sequence restarts after a wipe")
}

func TestOrdersByStatusSorted(t *testing.T) {
	store := NewMemoryStore()
	statuses := []models.OrderStatus{
		models.StatusPaid,
		models.StatusDelivered,
		models.StatusPaid,
		models.StatusFulfilled,
		models.StatusDelivered,
		models.StatusPaid,
	}
	for i, status := range statuses {
		require.NoError(t, store.InsertOrder(&models.Order{
			Folio:  fmt.Sprintf("GC%04d", i+1),
			Status: status,
		}))
	}

	rows, err := store.OrdersByStatus()
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{
		{Status: "Delivered", Count: 2},
		{Status: "Fulfilled", Count: 1},
		{Status: "Paid", Count: 3},
	}, rows)
}

func TestBuildReport(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InsertOrder(&models.Order{Folio: "GC0001", Status: models.StatusReceived}))
	require.NoError(t, store.InsertSuborder(&models.Suborder{OrderID: 1}))
	require.NoError(t, store.InsertExpenses([]*models.Expense{
		{Name: "Luz", CategoryID: 1, Amount: 400},
	}))

	report, err := BuildReport(store)
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.Counts.Orders)
	assert.EqualValues(t, 1, report.Counts.Suborders)
	assert.EqualValues(t, 1, report.Counts.Expenses)
	require.Len(t, report.ByStatus, 1)
	assert.Equal(t, StatusCount{Status: "Received", Count: 1}, report.ByStatus[0])
}
