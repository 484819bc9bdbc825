package generator

import (
	"fmt"
	"log"
	"time"

	"github.com/gorditas/config"
	"github.com/gorditas/database"
	"github.com/gorditas/models"
)

// Generator fabricates a consistent order-and-ledger dataset from static
// catalogs. Each run wipes the store first; an aborted run leaves a partial
// dataset that must be regenerated, not resumed.
type Generator struct {
	cfg     config.GeneratorConfig
	catalog *Catalog
	store   database.Store
	sampler *Sampler

	windowStart time.Time
	windowEnd   time.Time

	refs catalogRefs
}

// catalogRefs holds the persisted catalog rows with their assigned ids
type catalogRefs struct {
	orderTypes []*models.OrderType
	dineIn     *models.OrderType
	tables     []*models.DiningTable
	stews      []*models.Stew
	dishes     []*models.Dish
	products   []*models.Product
	extras     []*models.Extra
	categories []*models.ExpenseCategory
}

// New creates a generator whose date window ends now
func New(cfg config.GeneratorConfig, catalog *Catalog, store database.Store) *Generator {
	return NewAt(cfg, catalog, store, time.Now())
}

// NewAt creates a generator whose date window ends at the given time
func NewAt(cfg config.GeneratorConfig, catalog *Catalog, store database.Store, now time.Time) *Generator {
	start, end := cfg.Window(now)
	return &Generator{
		cfg:         cfg,
		catalog:     catalog,
		store:       store,
		sampler:     NewSampler(cfg.Seed),
		windowStart: start,
		windowEnd:   end,
	}
}

// Run executes one full generation: wipe, seed catalogs, synthesize orders
// with their details, synthesize expenses.
func (g *Generator) Run() error {
	log.Printf("Starting generation: %d orders, %d expenses, window %s → %s",
		g.cfg.OrderCount, g.cfg.ExpenseCount,
		g.windowStart.Format("2006-01-02"), g.windowEnd.Format("2006-01-02"))

	log.Println("Clearing existing dataset...")
	if err := g.store.DeleteAll(); err != nil {
		return fmt.Errorf("clear dataset: %w", err)
	}

	if err := g.seedCatalogs(); err != nil {
		return err
	}

	log.Printf("Generating %d orders...", g.cfg.OrderCount)
	for i := 0; i < g.cfg.OrderCount; i++ {
		order, err := g.buildOrder(i + 1)
		if err != nil {
			return fmt.Errorf("order %d: %w", i+1, err)
		}
		if err := g.store.InsertOrder(order); err != nil {
			return fmt.Errorf("order %d: %w", i+1, err)
		}
		if err := g.generateDetails(order); err != nil {
			return fmt.Errorf("order %d (%s): %w", i+1, order.Folio, err)
		}
	}
	log.Printf("  ✓ Generated %d orders", g.cfg.OrderCount)

	if err := g.generateExpenses(); err != nil {
		return err
	}

	log.Println("✅ Dataset generated successfully")
	return nil
}

// seedCatalogs persists the static reference data and keeps the stored rows
// so later foreign keys resolve against assigned ids.
func (g *Generator) seedCatalogs() error {
	log.Println("Seeding catalogs...")

	g.refs = catalogRefs{}

	for _, name := range g.catalog.OrderTypes {
		g.refs.orderTypes = append(g.refs.orderTypes, &models.OrderType{Name: name})
	}
	if err := g.store.InsertOrderTypes(g.refs.orderTypes); err != nil {
		return err
	}
	for _, t := range g.refs.orderTypes {
		if t.Name == models.TypeDineIn {
			g.refs.dineIn = t
		}
	}

	for _, label := range g.catalog.Tables {
		g.refs.tables = append(g.refs.tables, &models.DiningTable{Label: label})
	}
	if len(g.refs.tables) > 0 {
		if err := g.store.InsertTables(g.refs.tables); err != nil {
			return err
		}
	}

	for _, name := range g.catalog.Stews {
		g.refs.stews = append(g.refs.stews, &models.Stew{Name: name})
	}
	if len(g.refs.stews) > 0 {
		if err := g.store.InsertStews(g.refs.stews); err != nil {
			return err
		}
	}

	for _, entry := range g.catalog.Dishes {
		if entry.StewIndex < 0 || entry.StewIndex >= len(g.refs.stews) {
			return fmt.Errorf("dish %q: stew index %d out of range", entry.Name, entry.StewIndex)
		}
		g.refs.dishes = append(g.refs.dishes, &models.Dish{
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			StewID:    g.refs.stews[entry.StewIndex].StewID,
		})
	}
	if len(g.refs.dishes) > 0 {
		if err := g.store.InsertDishes(g.refs.dishes); err != nil {
			return err
		}
	}

	for _, entry := range g.catalog.Products {
		g.refs.products = append(g.refs.products, &models.Product{Name: entry.Name, UnitCost: entry.UnitCost})
	}
	if len(g.refs.products) > 0 {
		if err := g.store.InsertProducts(g.refs.products); err != nil {
			return err
		}
	}

	for _, entry := range g.catalog.Extras {
		g.refs.extras = append(g.refs.extras, &models.Extra{Name: entry.Name, UnitCost: entry.UnitCost})
	}
	if len(g.refs.extras) > 0 {
		if err := g.store.InsertExtras(g.refs.extras); err != nil {
			return err
		}
	}

	for _, name := range g.catalog.ExpenseCategories {
		g.refs.categories = append(g.refs.categories, &models.ExpenseCategory{Name: name})
	}
	if len(g.refs.categories) > 0 {
		if err := g.store.InsertExpenseCategories(g.refs.categories); err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d order types, %d tables, %d stews, %d dishes, %d products, %d extras, %d expense categories",
		len(g.refs.orderTypes), len(g.refs.tables), len(g.refs.stews), len(g.refs.dishes),
		len(g.refs.products), len(g.refs.extras), len(g.refs.categories))
	return nil
}
