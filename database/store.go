package database

import (
	"fmt"

	"github.com/gorditas/models"
	"gorm.io/gorm"
)

// Store is the persistence boundary for the generator. It is the only
// side-effecting collaborator the synthesizers talk to; everything behind it
// is replaceable (Postgres in production, memory in tests and dry runs).
type Store interface {
	// Catalog inserts. Implementations assign primary keys into the passed
	// records so foreign keys can be wired from them afterwards.
	InsertOrderTypes(types []*models.OrderType) error
	InsertTables(tables []*models.DiningTable) error
	InsertStews(stews []*models.Stew) error
	InsertDishes(dishes []*models.Dish) error
	InsertProducts(products []*models.Product) error
	InsertExtras(extras []*models.Extra) error
	InsertExpenseCategories(categories []*models.ExpenseCategory) error

	// Transactional inserts.
	InsertOrder(order *models.Order) error
	InsertSuborder(suborder *models.Suborder) error
	InsertOrderProducts(lines []*models.OrderProduct) error
	InsertOrderDish(line *models.OrderDish) error
	InsertOrderDishExtras(lines []*models.OrderDishExtra) error
	InsertExpenses(expenses []*models.Expense) error

	// Total finalization. One write per header, after all children exist.
	UpdateOrderTotal(orderID uint, total float64) error
	UpdateSuborderTotal(suborderID uint, total float64) error

	// DeleteAll wipes every generated collection, children first.
	DeleteAll() error

	// Read side used by the aggregation report.
	Counts() (Counts, error)
	OrdersByStatus() ([]StatusCount, error)
}

// GormStore implements Store on top of a GORM database handle
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given database handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// deleteOrder lists generated tables children-first so DeleteAll never
// violates a foreign key.
var deleteOrder = []string{
	"order_dish_extras",
	"order_dishes",
	"order_products",
	"suborders",
	"orders",
	"expenses",
	"dishes",
	"stews",
	"products",
	"extras",
	"dining_tables",
	"order_types",
	"expense_categories",
}

// InsertOrderTypes inserts order type catalog rows
func (s *GormStore) InsertOrderTypes(types []*models.OrderType) error {
	if err := s.db.Create(&types).Error; err != nil {
		return fmt.Errorf("insert order types: %w", err)
	}
	return nil
}

// InsertTables inserts dining table catalog rows
func (s *GormStore) InsertTables(tables []*models.DiningTable) error {
	if err := s.db.Create(&tables).Error; err != nil {
		return fmt.Errorf("insert dining tables: %w", err)
	}
	return nil
}

// InsertStews inserts stew catalog rows
func (s *GormStore) InsertStews(stews []*models.Stew) error {
	if err := s.db.Create(&stews).Error; err != nil {
		return fmt.Errorf("insert stews: %w", err)
	}
	return nil
}

// InsertDishes inserts dish catalog rows
func (s *GormStore) InsertDishes(dishes []*models.Dish) error {
	if err := s.db.Create(&dishes).Error; err != nil {
		return fmt.Errorf("insert dishes: %w", err)
	}
	return nil
}

// InsertProducts inserts product catalog rows
func (s *GormStore) InsertProducts(products []*models.Product) error {
	if err := s.db.Create(&products).Error; err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// InsertExtras inserts extra catalog rows
func (s *GormStore) InsertExtras(extras []*models.Extra) error {
	if err := s.db.Create(&extras).Error; err != nil {
		return fmt.Errorf("insert extras: %w", err)
	}
	return nil
}

// InsertExpenseCategories inserts expense category catalog rows
func (s *GormStore) InsertExpenseCategories(categories []*models.ExpenseCategory) error {
	if err := s.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("insert expense categories: %w", err)
	}
	return nil
}

// InsertOrder inserts a single order header
func (s *GormStore) InsertOrder(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("insert order %s: %w", order.Folio, err)
	}
	return nil
}

// InsertSuborder inserts a single suborder
func (s *GormStore) InsertSuborder(suborder *models.Suborder) error {
	if err := s.db.Create(suborder).Error; err != nil {
		return fmt.Errorf("insert suborder for order %d: %w", suborder.OrderID, err)
	}
	return nil
}

// InsertOrderProducts inserts product lines for one order
func (s *GormStore) InsertOrderProducts(lines []*models.OrderProduct) error {
	if len(lines) == 0 {
		return nil
	}
	if err := s.db.Create(&lines).Error; err != nil {
		return fmt.Errorf("insert product lines: %w", err)
	}
	return nil
}

// InsertOrderDish inserts one dish line. Dish lines are inserted one at a
// time because their extras reference the assigned line id.
func (s *GormStore) InsertOrderDish(line *models.OrderDish) error {
	if err := s.db.Create(line).Error; err != nil {
		return fmt.Errorf("insert dish line: %w", err)
	}
	return nil
}

// InsertOrderDishExtras inserts extra lines for one dish line
func (s *GormStore) InsertOrderDishExtras(lines []*models.OrderDishExtra) error {
	if len(lines) == 0 {
		return nil
	}
	if err := s.db.Create(&lines).Error; err != nil {
		return fmt.Errorf("insert extra lines: %w", err)
	}
	return nil
}

// InsertExpenses inserts expense records
func (s *GormStore) InsertExpenses(expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	if err := s.db.Create(&expenses).Error; err != nil {
		return fmt.Errorf("insert expenses: %w", err)
	}
	return nil
}

// UpdateOrderTotal finalizes an order total in a single write
func (s *GormStore) UpdateOrderTotal(orderID uint, total float64) error {
	err := s.db.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("total", total).Error
	if err != nil {
		return fmt.Errorf("update order %d total: %w", orderID, err)
	}
	return nil
}

// UpdateSuborderTotal finalizes a suborder total in a single write
func (s *GormStore) UpdateSuborderTotal(suborderID uint, total float64) error {
	err := s.db.Model(&models.Suborder{}).
		Where("suborder_id = ?", suborderID).
		Update("total", total).Error
	if err != nil {
		return fmt.Errorf("update suborder %d total: %w", suborderID, err)
	}
	return nil
}

// DeleteAll wipes all generated data in reverse dependency order
func (s *GormStore) DeleteAll() error {
	for _, table := range deleteOrder {
		if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return nil
}

// Counts returns row counts per generated collection
func (s *GormStore) Counts() (Counts, error) {
	var c Counts
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Order{}, &c.Orders},
		{&models.Suborder{}, &c.Suborders},
		{&models.OrderProduct{}, &c.ProductLines},
		{&models.OrderDish{}, &c.DishLines},
		{&models.OrderDishExtra{}, &c.ExtraLines},
		{&models.Expense{}, &c.Expenses},
	}
	for _, ct := range counts {
		if err := s.db.Model(ct.model).Count(ct.dst).Error; err != nil {
			return Counts{}, fmt.Errorf("count rows: %w", err)
		}
	}
	return c, nil
}

// OrdersByStatus returns order counts grouped by status, ascending by status
func (s *GormStore) OrdersByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("group orders by status: %w", err)
	}
	return rows, nil
}
