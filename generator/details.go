package generator

import (
	"fmt"

	"github.com/gorditas/models"
)

// generateDetails creates the suborder and all lines for one order, then
// finalizes both totals. The total is accumulated fully in memory and written
// once per header, so the store never holds a partial total.
func (g *Generator) generateDetails(order *models.Order) error {
	suborder := &models.Suborder{OrderID: order.OrderID}
	if err := g.store.InsertSuborder(suborder); err != nil {
		return err
	}

	ready := order.Status.Ready()
	delivered := order.Status.Delivered()
	var total float64

	// Product lines: 1-3, sampled with replacement.
	productCount, err := g.sampler.IntBetween(1, 3)
	if err != nil {
		return err
	}
	productLines := make([]*models.OrderProduct, 0, productCount)
	for i := 0; i < productCount; i++ {
		product, err := Pick(g.sampler, g.refs.products)
		if err != nil {
			return fmt.Errorf("sample product: %w", err)
		}
		quantity, err := g.sampler.IntBetween(1, 3)
		if err != nil {
			return err
		}
		amount := product.UnitCost * float64(quantity)
		productLines = append(productLines, &models.OrderProduct{
			OrderID:   order.OrderID,
			ProductID: product.ProductID,
			UnitCost:  product.UnitCost,
			Quantity:  quantity,
			Amount:    amount,
			Ready:     ready,
			Delivered: delivered,
		})
		total += amount
	}
	if err := g.store.InsertOrderProducts(productLines); err != nil {
		return err
	}

	// Dish lines: 1-4 distinct dishes. The requested count is clamped to the
	// catalog size; an empty dish catalog cannot satisfy the minimum of one.
	if len(g.refs.dishes) == 0 {
		return fmt.Errorf("%w: no dishes in catalog", ErrInsufficientCatalog)
	}
	dishCount, err := g.sampler.IntBetween(1, 4)
	if err != nil {
		return err
	}
	if dishCount > len(g.refs.dishes) {
		dishCount = len(g.refs.dishes)
	}
	indexes, err := g.sampler.DistinctIndexes(len(g.refs.dishes), dishCount)
	if err != nil {
		return fmt.Errorf("sample dishes: %w", err)
	}

	for _, idx := range indexes {
		dish := g.refs.dishes[idx]
		quantity, err := g.sampler.IntBetween(1, 2)
		if err != nil {
			return err
		}
		note, err := Pick(g.sampler, g.catalog.Notes)
		if err != nil {
			return fmt.Errorf("sample dish note: %w", err)
		}
		amount := dish.UnitPrice * float64(quantity)
		line := &models.OrderDish{
			SuborderID: suborder.SuborderID,
			DishID:     dish.DishID,
			StewID:     dish.StewID,
			UnitCost:   dish.UnitPrice,
			Quantity:   quantity,
			Amount:     amount,
			Note:       note,
			Ready:      ready,
			Delivered:  delivered,
		}
		if err := g.store.InsertOrderDish(line); err != nil {
			return err
		}
		total += amount

		extraLines, extraTotal, err := g.buildExtras(line.LineID)
		if err != nil {
			return err
		}
		if err := g.store.InsertOrderDishExtras(extraLines); err != nil {
			return err
		}
		total += extraTotal
	}

	// Phase 2: one finalizing write per header.
	if err := g.store.UpdateOrderTotal(order.OrderID, total); err != nil {
		return err
	}
	if err := g.store.UpdateSuborderTotal(suborder.SuborderID, total); err != nil {
		return err
	}
	order.Total = total
	suborder.Total = total
	return nil
}

// buildExtras samples 0-2 extras (with replacement) for one dish line. Extras
// always carry quantity 1. A catalog without extras yields none.
func (g *Generator) buildExtras(dishLineID uint) ([]*models.OrderDishExtra, float64, error) {
	if len(g.refs.extras) == 0 {
		return nil, 0, nil
	}
	count, err := g.sampler.IntBetween(0, 2)
	if err != nil {
		return nil, 0, err
	}
	lines := make([]*models.OrderDishExtra, 0, count)
	var total float64
	for i := 0; i < count; i++ {
		extra, err := Pick(g.sampler, g.refs.extras)
		if err != nil {
			return nil, 0, fmt.Errorf("sample extra: %w", err)
		}
		lines = append(lines, &models.OrderDishExtra{
			DishLineID: dishLineID,
			ExtraID:    extra.ExtraID,
			UnitCost:   extra.UnitCost,
			Quantity:   1,
			Amount:     extra.UnitCost,
		})
		total += extra.UnitCost
	}
	return lines, total, nil
}
