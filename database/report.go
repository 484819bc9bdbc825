package database

import (
	"fmt"
	"log"
)

// Counts holds row counts per generated collection
type Counts struct {
	Orders       int64
	Suborders    int64
	ProductLines int64
	DishLines    int64
	ExtraLines   int64
	Expenses     int64
}

// StatusCount is one row of the group-by-status summary
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Report is the read-side summary of a generation run. It never mutates the
// dataset; it exists to verify a run, not to alter it.
type Report struct {
	Counts   Counts
	ByStatus []StatusCount
}

// BuildReport reads counts and the status summary from the store
func BuildReport(store Store) (*Report, error) {
	counts, err := store.Counts()
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	byStatus, err := store.OrdersByStatus()
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	return &Report{Counts: counts, ByStatus: byStatus}, nil
}

// Print logs the report summary
func (r *Report) Print() {
	log.Println("=== Generation Summary ===")
	log.Printf("📋 Orders:        %d", r.Counts.Orders)
	log.Printf("📋 Suborders:     %d", r.Counts.Suborders)
	log.Printf("🥤 Product lines: %d", r.Counts.ProductLines)
	log.Printf("🌮 Dish lines:    %d", r.Counts.DishLines)
	log.Printf("🧀 Extra lines:   %d", r.Counts.ExtraLines)
	log.Printf("💸 Expenses:      %d", r.Counts.Expenses)

	log.Println("Orders by status:")
	for _, row := range r.ByStatus {
		log.Printf("  %-10s: %d", row.Status, row.Count)
	}
}
