package dbadapter

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Importer loads generated fixture files into an external datastore. The
// real implementation is out of scope; the interface exists so orchestration
// code has a stable seam.
type Importer interface {
	ImportProducts(ctx context.Context, productsFile string) error
	ImportCustomers(ctx context.Context, customersFile, sequencesFile string) error
	ImportOrders(ctx context.Context, ordersFile string) error
	Close() error
}

// Module provides the importer to Fx and closes it on shutdown.
var Module = fx.Provide(NewImporter)

// NewImporter returns the no-op importer wired into the Fx lifecycle.
func NewImporter(lc fx.Lifecycle, logger *zap.Logger) Importer {
	imp := NewNoop(logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return imp.Close()
		},
	})
	return imp
}

// Noop is an always-succeeding importer placeholder.
type Noop struct {
	logger *zap.Logger
}

// NewNoop constructs the placeholder importer.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

// ImportProducts records the request and succeeds.
func (n *Noop) ImportProducts(ctx context.Context, productsFile string) error {
	n.logger.Info("would import products", zap.String("file", productsFile))
	return nil
}

// ImportCustomers records the request and succeeds.
func (n *Noop) ImportCustomers(ctx context.Context, customersFile, sequencesFile string) error {
	n.logger.Info("would import customers",
		zap.String("customers", customersFile),
		zap.String("sequences", sequencesFile))
	return nil
}

// ImportOrders records the request and succeeds.
func (n *Noop) ImportOrders(ctx context.Context, ordersFile string) error {
	n.logger.Info("would import orders", zap.String("file", ordersFile))
	return nil
}

// Close releases nothing; there is nothing to release.
func (n *Noop) Close() error {
	n.logger.Info("importer closed")
	return nil
}
