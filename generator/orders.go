package generator

import (
	"fmt"

	"github.com/gorditas/models"
)

// buildOrder fabricates one order header. The folio is sequential and
// zero-padded; a table is bound only for dine-in orders. Total stays 0 until
// the detail pass finalizes it.
func (g *Generator) buildOrder(seq int) (*models.Order, error) {
	folio := fmt.Sprintf("%s%0*d", g.cfg.FolioPrefix, g.cfg.FolioWidth, seq)

	orderType, err := Pick(g.sampler, g.refs.orderTypes)
	if err != nil {
		return nil, fmt.Errorf("sample order type: %w", err)
	}

	order := &models.Order{
		Folio:       folio,
		OrderTypeID: orderType.OrderTypeID,
		Total:       0,
	}

	if orderType.Name == models.TypeDineIn {
		table, err := Pick(g.sampler, g.refs.tables)
		if err != nil {
			return nil, fmt.Errorf("sample table: %w", err)
		}
		tableID := table.TableID
		order.TableID = &tableID
		order.TableLabel = table.Label
	}

	if order.Customer, err = Pick(g.sampler, g.catalog.Customers); err != nil {
		return nil, fmt.Errorf("sample customer: %w", err)
	}
	if order.Status, err = Pick(g.sampler, g.catalog.Statuses); err != nil {
		return nil, fmt.Errorf("sample status: %w", err)
	}
	if order.Note, err = Pick(g.sampler, g.catalog.Notes); err != nil {
		return nil, fmt.Errorf("sample note: %w", err)
	}
	if order.OrderedAt, err = g.sampler.TimeBetween(g.windowStart, g.windowEnd); err != nil {
		return nil, fmt.Errorf("sample timestamp: %w", err)
	}

	return order, nil
}
