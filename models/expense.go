package models

import "time"

// Expense represents expenses table. Expenses are independent of orders and
// share only the generation date window.
type Expense struct {
	ExpenseID   uint      `gorm:"primaryKey;column:expense_id" json:"expense_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	Amount      float64   `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	SpentAt     time.Time `gorm:"not null" json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Category ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
