package bootstrap

import (
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/catalog"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
		NewDisplay,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "file", cfg.Catalog.File, "rooms", len(cat.Rooms()), "slots", len(cat.Slots()))
	return cat, nil
}

func NewDisplay(cfg config.Config) (booking.Display, error) {
	loc, err := cfg.Display.Location()
	if err != nil {
		return booking.Display{}, err
	}
	return booking.NewDisplay(loc), nil
}
