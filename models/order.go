package models

import "time"

// OrderStatus type for order status
type OrderStatus string

const (
	StatusReceived  OrderStatus = "Received"
	StatusPreparing OrderStatus = "Preparing"
	StatusFulfilled OrderStatus = "Fulfilled"
	StatusDelivered OrderStatus = "Delivered"
	StatusPaid      OrderStatus = "Paid"
)

// AllStatuses returns the full status vocabulary
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusReceived,
		StatusPreparing,
		StatusFulfilled,
		StatusDelivered,
		StatusPaid,
	}
}

// Ready reports whether lines of an order in this status are ready.
// Line flags are derived from the order status, never sampled.
func (s OrderStatus) Ready() bool {
	switch s {
	case StatusFulfilled, StatusDelivered, StatusPaid:
		return true
	}
	return false
}

// Delivered reports whether lines of an order in this status are delivered
func (s OrderStatus) Delivered() bool {
	switch s {
	case StatusDelivered, StatusPaid:
		return true
	}
	return false
}

// Order represents orders table
type Order struct {
	OrderID     uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	Folio       string      `gorm:"type:varchar(30);not null;unique" json:"folio"`
	OrderTypeID uint        `gorm:"not null" json:"order_type_id"`
	TableID     *uint       `json:"table_id,omitempty"`
	TableLabel  string      `gorm:"type:varchar(50)" json:"table_label,omitempty"`
	Customer    string      `gorm:"type:varchar(100);not null" json:"customer"`
	Total       float64     `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Status      OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Note        string      `gorm:"type:text" json:"note"`
	OrderedAt   time.Time   `gorm:"not null" json:"ordered_at"`
	CreatedAt   time.Time   `json:"created_at"`

	// Relationships
	OrderType OrderType    `gorm:"foreignKey:OrderTypeID" json:"order_type,omitempty"`
	Table     *DiningTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// Suborder represents suborders table. The generator creates exactly one
// suborder per order; the schema allows many.
type Suborder struct {
	SuborderID uint      `gorm:"primaryKey;column:suborder_id" json:"suborder_id"`
	OrderID    uint      `gorm:"not null" json:"order_id"`
	Total      float64   `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName specifies the table name for Suborder
func (Suborder) TableName() string {
	return "suborders"
}
