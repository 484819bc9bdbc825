package database

import (
	"sort"
	"sync"

	"github.com/gorditas/models"
)

// MemoryStore is an in-memory Store mirroring the persistent one. It backs
// dry runs and tests; primary keys are assigned the same way the database
// would, sequentially per collection.
type MemoryStore struct {
	mu sync.Mutex

	orderTypes        []models.OrderType
	tables            []models.DiningTable
	stews             []models.Stew
	dishes            []models.Dish
	products          []models.Product
	extras            []models.Extra
	expenseCategories []models.ExpenseCategory

	orders       []models.Order
	suborders    []models.Suborder
	productLines []models.OrderProduct
	dishLines    []models.OrderDish
	extraLines   []models.OrderDishExtra
	expenses     []models.Expense

	nextID map[string]uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: make(map[string]uint)}
}

func (s *MemoryStore) assign(collection string) uint {
	s.nextID[collection]++
	return s.nextID[collection]
}

// InsertOrderTypes stores order type catalog rows
func (s *MemoryStore) InsertOrderTypes(types []*models.OrderType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range types {
		t.OrderTypeID = s.assign("order_types")
		s.orderTypes = append(s.orderTypes, *t)
	}
	return nil
}

// InsertTables stores dining table catalog rows
func (s *MemoryStore) InsertTables(tables []*models.DiningTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tables {
		t.TableID = s.assign("dining_tables")
		s.tables = append(s.tables, *t)
	}
	return nil
}

// InsertStews stores stew catalog rows
func (s *MemoryStore) InsertStews(stews []*models.Stew) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range stews {
		st.StewID = s.assign("stews")
		s.stews = append(s.stews, *st)
	}
	return nil
}

// InsertDishes stores dish catalog rows
func (s *MemoryStore) InsertDishes(dishes []*models.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range dishes {
		d.DishID = s.assign("dishes")
		s.dishes = append(s.dishes, *d)
	}
	return nil
}

// InsertProducts stores product catalog rows
func (s *MemoryStore) InsertProducts(products []*models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		p.ProductID = s.assign("products")
		s.products = append(s.products, *p)
	}
	return nil
}

// InsertExtras stores extra catalog rows
func (s *MemoryStore) InsertExtras(extras []*models.Extra) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range extras {
		e.ExtraID = s.assign("extras")
		s.extras = append(s.extras, *e)
	}
	return nil
}

// InsertExpenseCategories stores expense category catalog rows
func (s *MemoryStore) InsertExpenseCategories(categories []*models.ExpenseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		c.CategoryID = s.assign("expense_categories")
		s.expenseCategories = append(s.expenseCategories, *c)
	}
	return nil
}

// InsertOrder stores one order header
func (s *MemoryStore) InsertOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.OrderID = s.assign("orders")
	s.orders = append(s.orders, *order)
	return nil
}

// InsertSuborder stores one suborder
func (s *MemoryStore) InsertSuborder(suborder *models.Suborder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	suborder.SuborderID = s.assign("suborders")
	s.suborders = append(s.suborders, *suborder)
	return nil
}

// InsertOrderProducts stores product lines
func (s *MemoryStore) InsertOrderProducts(lines []*models.OrderProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lines {
		l.LineID = s.assign("order_products")
		s.productLines = append(s.productLines, *l)
	}
	return nil
}

// InsertOrderDish stores one dish line
func (s *MemoryStore) InsertOrderDish(line *models.OrderDish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	line.LineID = s.assign("order_dishes")
	s.dishLines = append(s.dishLines, *line)
	return nil
}

// InsertOrderDishExtras stores extra lines
func (s *MemoryStore) InsertOrderDishExtras(lines []*models.OrderDishExtra) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lines {
		l.LineID = s.assign("order_dish_extras")
		s.extraLines = append(s.extraLines, *l)
	}
	return nil
}

// InsertExpenses stores expense records
func (s *MemoryStore) InsertExpenses(expenses []*models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range expenses {
		e.ExpenseID = s.assign("expenses")
		s.expenses = append(s.expenses, *e)
	}
	return nil
}

// UpdateOrderTotal finalizes an order total
func (s *MemoryStore) UpdateOrderTotal(orderID uint, total float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i].Total = total
			return nil
		}
	}
	return nil
}

// UpdateSuborderTotal finalizes a suborder total
func (s *MemoryStore) UpdateSuborderTotal(suborderID uint, total float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suborders {
		if s.suborders[i].SuborderID == suborderID {
			s.suborders[i].Total = total
			return nil
		}
	}
	return nil
}

// DeleteAll wipes every collection and resets id counters
func (s *MemoryStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderTypes = nil
	s.tables = nil
	s.stews = nil
	s.dishes = nil
	s.products = nil
	s.extras = nil
	s.expenseCategories = nil
	s.orders = nil
	s.suborders = nil
	s.productLines = nil
	s.dishLines = nil
	s.extraLines = nil
	s.expenses = nil
	s.nextID = make(map[string]uint)
	return nil
}

// Counts returns row counts per generated collection
func (s *MemoryStore) Counts() (Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Orders:       int64(len(s.orders)),
		Suborders:    int64(len(s.suborders)),
		ProductLines: int64(len(s.productLines)),
		DishLines:    int64(len(s.dishLines)),
		ExtraLines:   int64(len(s.extraLines)),
		Expenses:     int64(len(s.expenses)),
	}, nil
}

// OrdersByStatus returns order counts grouped by status, ascending by status
func (s *MemoryStore) OrdersByStatus() ([]StatusCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byStatus := make(map[string]int64)
	for _, o := range s.orders {
		byStatus[string(o.Status)]++
	}
	rows := make([]StatusCount, 0, len(byStatus))
	for status, count := range byStatus {
		rows = append(rows, StatusCount{Status: status, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows, nil
}

// Snapshot accessors. Each returns a copy so callers can inspect generated
// data without racing the store.

// Orders returns all stored orders
func (s *MemoryStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

// Suborders returns all stored suborders
func (s *MemoryStore) Suborders() []models.Suborder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Suborder(nil), s.suborders...)
}

// ProductLines returns all stored product lines
func (s *MemoryStore) ProductLines() []models.OrderProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OrderProduct(nil), s.productLines...)
}

// DishLines returns all stored dish lines
func (s *MemoryStore) DishLines() []models.OrderDish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OrderDish(nil), s.dishLines...)
}

// ExtraLines returns all stored extra lines
func (s *MemoryStore) ExtraLines() []models.OrderDishExtra {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OrderDishExtra(nil), s.extraLines...)
}

// Expenses returns all stored expenses
func (s *MemoryStore) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense(nil), s.expenses...)
}

// Dishes returns the stored dish catalog
func (s *MemoryStore) Dishes() []models.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Dish(nil), s.dishes...)
}

// Products returns the stored product catalog
func (s *MemoryStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

// Extras returns the stored extra catalog
func (s *MemoryStore) Extras() []models.Extra {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Extra(nil), s.extras...)
}

// Stews returns the stored stew catalog
func (s *MemoryStore) Stews() []models.Stew {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Stew(nil), s.stews...)
}

// OrderTypes returns the stored order type catalog
func (s *MemoryStore) OrderTypes() []models.OrderType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OrderType(nil), s.orderTypes...)
}

// Tables returns the stored dining table catalog
func (s *MemoryStore) Tables() []models.DiningTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DiningTable(nil), s.tables...)
}

// ExpenseCategories returns the stored expense category catalog
func (s *MemoryStore) ExpenseCategories() []models.ExpenseCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ExpenseCategory(nil), s.expenseCategories...)
}
