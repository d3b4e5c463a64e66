package app

import (
	"log/slog"

	"tissovison.com/app/internal/modules/cart"
	"tissovison.com/app/internal/modules/catalog"
	"tissovison.com/app/internal/modules/customizer"
	"tissovison.com/app/internal/storage"
)

// App is the application context: every shared resource, constructed once in
// main and passed by reference. Nothing in the module reaches for globals.
type App struct {
	Logger     *slog.Logger
	Store      storage.Store
	Catalog    []catalog.Product
	Ledger     *cart.Ledger
	Customizer *customizer.Service
}

// New wires the context: storage first, then the ledger and customizer that
// rehydrate from it. The cart is re-validated against the selected catalog
// whenever the customizer changes (product selection narrows the catalog).
func New(logger *slog.Logger, store storage.Store) *App {
	a := &App{
		Logger:     logger,
		Store:      store,
		Catalog:    catalog.Default(),
		Ledger:     cart.NewLedger(store, logger),
		Customizer: customizer.NewService(store, logger),
	}

	a.Customizer.Subscribe(func(cfg customizer.Config) {
		a.Ledger.Validate(catalog.Filter(a.Catalog, cfg.SelectedProducts))
	})

	return a
}

// Products returns the catalog narrowed to the customizer's selection.
func (a *App) Products() []catalog.Product {
	return catalog.Filter(a.Catalog, a.Customizer.Config().SelectedProducts)
}
