package generator

import (
	"github.com/gorditas/config"
	"github.com/gorditas/models"
)

// DishEntry declares one dish and the index of its default stew pairing in
// Catalog.Stews. The pairing is fixed at catalog definition time; orders
// never pick a stew independently of the dish.
type DishEntry struct {
	Name      string
	UnitPrice float64
	StewIndex int
}

// ItemEntry declares one priced catalog item (product or extra)
type ItemEntry struct {
	Name     string
	UnitCost float64
}

// Catalog holds the static reference data a generation run is seeded from.
// Entity ids are assigned when the catalog rows are persisted, so entries
// here reference each other by index, not id.
type Catalog struct {
	OrderTypes        []string
	Tables            []string
	Stews             []string
	Dishes            []DishEntry
	Products          []ItemEntry
	Extras            []ItemEntry
	ExpenseCategories []string

	Customers []string
	Notes     []string
	Statuses  []models.OrderStatus

	// ExpenseNames pools expense names per category; ExpenseRanges bounds
	// the sampled amount per category.
	ExpenseNames  map[string][]string
	ExpenseRanges map[string]config.AmountRange
}

// DefaultCatalog returns the built-in gordita shop reference data
func DefaultCatalog() *Catalog {
	return &Catalog{
		OrderTypes: []string{models.TypeDineIn, models.TypeTakeout, models.TypeDelivery},
		Tables: []string{
			"Mesa 1", "Mesa 2", "Mesa 3", "Mesa 4",
			"Mesa 5", "Mesa 6", "Mesa 7", "Mesa 8",
		},
		Stews: []string{
			"Chicharrón prensado",
			"Rajas con queso",
			"Deshebrada de res",
			"Pollo en salsa verde",
			"Mole rojo",
			"Frijoles con chorizo",
			"Picadillo",
			"Nopales con huevo",
		},
		Dishes: []DishEntry{
			{Name: "Gordita", UnitPrice: 35, StewIndex: 0},
			{Name: "Gordita de maíz azul", UnitPrice: 40, StewIndex: 1},
			{Name: "Quesadilla", UnitPrice: 45, StewIndex: 2},
			{Name: "Sope", UnitPrice: 32, StewIndex: 3},
			{Name: "Taco dorado", UnitPrice: 25, StewIndex: 4},
			{Name: "Huarache", UnitPrice: 60, StewIndex: 5},
			{Name: "Burrito", UnitPrice: 55, StewIndex: 6},
			{Name: "Tlacoyo", UnitPrice: 38, StewIndex: 7},
		},
		Products: []ItemEntry{
			{Name: "Coca-Cola 600ml", UnitCost: 25},
			{Name: "Agua de horchata", UnitCost: 20},
			{Name: "Agua de jamaica", UnitCost: 20},
			{Name: "Café de olla", UnitCost: 18},
			{Name: "Jarritos tamarindo", UnitCost: 22},
			{Name: "Agua embotellada", UnitCost: 15},
		},
		Extras: []ItemEntry{
			{Name: "Queso extra", UnitCost: 10},
			{Name: "Crema", UnitCost: 8},
			{Name: "Aguacate", UnitCost: 15},
			{Name: "Salsa extra", UnitCost: 5},
			{Name: "Cebolla curtida", UnitCost: 5},
		},
		ExpenseCategories: []string{
			"Supplies", "Utilities", "Payroll", "Maintenance", "Marketing", "Other",
		},
		Customers: []string{
			"María González",
			"Juan Pérez",
			"Lupita Hernández",
			"Carlos Ramírez",
			"Ana Martínez",
			"Pedro Sánchez",
			"Sofía Torres",
			"Miguel Flores",
			"Fernanda López",
			"Mostrador",
		},
		Notes: []string{
			"Sin cebolla",
			"Salsa aparte",
			"Bien dorada",
			"Para llevar extra servilletas",
			"Sin picante",
			"Con todo",
		},
		Statuses: models.AllStatuses(),
		ExpenseNames: map[string][]string{
			"Supplies":    {"Masa de maíz", "Carbón", "Desechables", "Verdura del mercado"},
			"Utilities":   {"Luz", "Agua", "Gas LP", "Internet"},
			"Payroll":     {"Nómina cocina", "Nómina mostrador", "Nómina reparto"},
			"Maintenance": {"Reparación plancha", "Mantenimiento refrigerador", "Plomería"},
			"Marketing":   {"Volantes", "Lona promocional", "Redes sociales"},
			"Other":       {"Papelería", "Propinas compartidas", "Imprevistos"},
		},
		ExpenseRanges: config.ExpenseRanges,
	}
}
