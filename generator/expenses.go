package generator

import (
	"fmt"
	"log"

	"github.com/gorditas/models"
)

// generateExpenses fabricates the configured number of expense records.
// Expenses are independent of orders; they share only the date window.
func (g *Generator) generateExpenses() error {
	log.Printf("Generating %d expenses...", g.cfg.ExpenseCount)

	expenses := make([]*models.Expense, 0, g.cfg.ExpenseCount)
	for i := 0; i < g.cfg.ExpenseCount; i++ {
		expense, err := g.buildExpense()
		if err != nil {
			return fmt.Errorf("expense %d: %w", i+1, err)
		}
		expenses = append(expenses, expense)
	}
	if err := g.store.InsertExpenses(expenses); err != nil {
		return err
	}

	log.Printf("  ✓ Generated %d expenses", len(expenses))
	return nil
}

// buildExpense fabricates one expense with a category-specific amount range
func (g *Generator) buildExpense() (*models.Expense, error) {
	category, err := Pick(g.sampler, g.refs.categories)
	if err != nil {
		return nil, fmt.Errorf("sample category: %w", err)
	}

	amountRange, ok := g.catalog.ExpenseRanges[category.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category.Name)
	}

	name, err := Pick(g.sampler, g.catalog.ExpenseNames[category.Name])
	if err != nil {
		return nil, fmt.Errorf("sample name for category %s: %w", category.Name, err)
	}

	amount, err := g.sampler.IntBetween(amountRange.Low, amountRange.High)
	if err != nil {
		return nil, fmt.Errorf("amount for category %s: %w", category.Name, err)
	}

	spentAt, err := g.sampler.TimeBetween(g.windowStart, g.windowEnd)
	if err != nil {
		return nil, fmt.Errorf("sample date: %w", err)
	}

	return &models.Expense{
		Name:        name,
		CategoryID:  category.CategoryID,
		Amount:      float64(amount),
		Description: fmt.Sprintf("%s - %s", name, spentAt.Format("2006-01-02")),
		SpentAt:     spentAt,
	}, nil
}
