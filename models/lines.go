package models

import "time"

// OrderProduct represents order_products table (stock product lines)
type OrderProduct struct {
	LineID    uint      `gorm:"primaryKey;column:line_id" json:"line_id"`
	OrderID   uint      `gorm:"not null" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	UnitCost  float64   `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Ready     bool      `gorm:"not null;default:false" json:"ready"`
	Delivered bool      `gorm:"not null;default:false" json:"delivered"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderProduct
func (OrderProduct) TableName() string {
	return "order_products"
}

// OrderDish represents order_dishes table. Dish ids are pairwise distinct
// within one order.
type OrderDish struct {
	LineID     uint      `gorm:"primaryKey;column:line_id" json:"line_id"`
	SuborderID uint      `gorm:"not null" json:"suborder_id"`
	DishID     uint      `gorm:"not null" json:"dish_id"`
	StewID     uint      `gorm:"not null" json:"stew_id"`
	UnitCost   float64   `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Quantity   int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Amount     float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Note       string    `gorm:"type:text" json:"note"`
	Ready      bool      `gorm:"not null;default:false" json:"ready"`
	Delivered  bool      `gorm:"not null;default:false" json:"delivered"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Suborder Suborder `gorm:"foreignKey:SuborderID" json:"suborder,omitempty"`
	Dish     Dish     `gorm:"foreignKey:DishID" json:"dish,omitempty"`
	Stew     Stew     `gorm:"foreignKey:StewID" json:"stew,omitempty"`
}

// TableName specifies the table name for OrderDish
func (OrderDish) TableName() string {
	return "order_dishes"
}

// OrderDishExtra represents order_dish_extras table. Extras always carry
// quantity 1 in generated data.
type OrderDishExtra struct {
	LineID     uint      `gorm:"primaryKey;column:line_id" json:"line_id"`
	DishLineID uint      `gorm:"not null" json:"dish_line_id"`
	ExtraID    uint      `gorm:"not null" json:"extra_id"`
	UnitCost   float64   `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Quantity   int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	Amount     float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	DishLine OrderDish `gorm:"foreignKey:DishLineID" json:"dish_line,omitempty"`
	Extra    Extra     `gorm:"foreignKey:ExtraID" json:"extra,omitempty"`
}

// TableName specifies the table name for OrderDishExtra
func (OrderDishExtra) TableName() string {
	return "order_dish_extras"
}
