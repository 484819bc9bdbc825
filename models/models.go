package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent catalog tables (no foreign keys)
		&OrderType{},
		&DiningTable{},
		&Stew{},
		&Product{},
		&Extra{},
		&ExpenseCategory{},

		// 2. Catalog tables with dependencies
		&Dish{}, // depends on: Stew

		// 3. Transactional tables
		&Order{},    // depends on: OrderType, DiningTable
		&Suborder{}, // depends on: Order
		&Expense{},  // depends on: ExpenseCategory

		// 4. Line tables
		&OrderProduct{},   // depends on: Order, Product
		&OrderDish{},      // depends on: Suborder, Dish, Stew
		&OrderDishExtra{}, // depends on: OrderDish, Extra
	}
}
