package models

import "time"

// Order type names. The generator only binds a table for dine-in orders.
const (
	TypeDineIn   = "Dine-in"
	TypeTakeout  = "Takeout"
	TypeDelivery = "Delivery"
)

// OrderType represents order_types table
type OrderType struct {
	OrderTypeID uint      `gorm:"primaryKey;column:order_type_id" json:"order_type_id"`
	Name        string    `gorm:"type:varchar(30);not null;unique" json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for OrderType
func (OrderType) TableName() string {
	return "order_types"
}

// DiningTable represents dining_tables table
type DiningTable struct {
	TableID   uint      `gorm:"primaryKey;column:table_id" json:"table_id"`
	Label     string    `gorm:"type:varchar(50);not null;unique" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for DiningTable
func (DiningTable) TableName() string {
	return "dining_tables"
}

// Stew represents stews table
type Stew struct {
	StewID    uint      `gorm:"primaryKey;column:stew_id" json:"stew_id"`
	Name      string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Stew
func (Stew) TableName() string {
	return "stews"
}

// Dish represents dishes table. Every dish carries its default stew pairing;
// the generator never picks a stew independently of the dish.
type Dish struct {
	DishID    uint      `gorm:"primaryKey;column:dish_id" json:"dish_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	UnitPrice float64   `gorm:"type:decimal(12,2);not null;check:unit_price > 0" json:"unit_price"`
	StewID    uint      `gorm:"not null" json:"stew_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Stew Stew `gorm:"foreignKey:StewID" json:"stew,omitempty"`
}

// TableName specifies the table name for Dish
func (Dish) TableName() string {
	return "dishes"
}

// Product represents products table (stock items sold alongside dishes)
type Product struct {
	ProductID uint      `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	UnitCost  float64   `gorm:"type:decimal(12,2);not null;check:unit_cost > 0" json:"unit_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// Extra represents extras table (modifiers applied to dish lines)
type Extra struct {
	ExtraID   uint      `gorm:"primaryKey;column:extra_id" json:"extra_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	UnitCost  float64   `gorm:"type:decimal(12,2);not null;check:unit_cost > 0" json:"unit_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Extra
func (Extra) TableName() string {
	return "extras"
}

// ExpenseCategory represents expense_categories table
type ExpenseCategory struct {
	CategoryID uint      `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name       string    `gorm:"type:varchar(50);not null;unique" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for ExpenseCategory
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
