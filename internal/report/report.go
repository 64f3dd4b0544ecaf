package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/petrogen/internal/catalog"
	"github.com/Additional-Code/petrogen/internal/config"
	"github.com/Additional-Code/petrogen/internal/csvio"
	"github.com/Additional-Code/petrogen/internal/dbadapter"
	"github.com/Additional-Code/petrogen/internal/entity"
	"github.com/Additional-Code/petrogen/internal/generator"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// Generator sequences catalog loading, order synthesis, and file output for
// single-month, current-month, multi-year, and single-file reports.
type Generator struct {
	cfg      config.Config
	catalog  *catalog.Provider
	engine   *generator.Engine
	csv      *csvio.Handler
	importer dbadapter.Importer
	logger   *zap.Logger

	// Now supplies the current time; tests override it.
	Now func() time.Time
}

// Params defines dependencies for constructing a Generator.
type Params struct {
	fx.In

	Config   config.Config
	Catalog  *catalog.Provider
	Engine   *generator.Engine
	CSV      *csvio.Handler
	Importer dbadapter.Importer
	Logger   *zap.Logger
}

// Module provides the report generator to Fx.
var Module = fx.Provide(NewGenerator)

// NewGenerator wires a Generator and prepares the output directory tree.
func NewGenerator(p Params) (*Generator, error) {
	if err := p.Config.EnsureDirectories(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      p.Config,
		catalog:  p.Catalog,
		engine:   p.Engine,
		csv:      p.CSV,
		importer: p.Importer,
		logger:   p.Logger,
		Now:      time.Now,
	}, nil
}

// MonthlyFile returns the default orders file path for a month.
func (g *Generator) MonthlyFile(year, month int) string {
	return filepath.Join(g.cfg.Paths.OrderDir, fmt.Sprintf("orders_%d_%02d.csv", year, month))
}

// MonthlyOrders generates numOrders orders for the given month and writes
// them to outputFile. A negative numOrders falls back to the configured
// per-month default. forceNew regenerates the product and customer catalogs
// before use.
func (g *Generator) MonthlyOrders(ctx context.Context, year, month int, outputFile string, numOrders int, forceNew bool) error {
	if numOrders < 0 {
		numOrders = g.cfg.Generation.OrdersPerMonth
	}

	g.logger.Info("starting order generation", zap.Int("year", year), zap.Int("month", month), zap.Int("orders", numOrders))

	products, err := g.catalog.Products(g.cfg.Paths.ProductsFile, forceNew)
	if err != nil {
		g.logger.Error("product catalog unavailable", zap.Error(err))
		return err
	}

	customers, err := g.catalog.Customers(g.cfg.Paths.CustomersFile, g.cfg.Paths.SequencesFile, g.cfg.Generation.NumCustomers, forceNew)
	if err != nil {
		g.logger.Error("customer catalog unavailable", zap.Error(err))
		return err
	}

	orders, err := g.engine.Orders(products, customers, year, month, numOrders)
	if err != nil {
		g.logger.Error("order synthesis failed", zap.Error(err))
		return err
	}

	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, order.ToRow())
	}

	if err := g.csv.Write(outputFile, entity.OrderHeader, rows); err != nil {
		g.logger.Error("failed to write orders", zap.String("file", outputFile), zap.Error(err))
		return err
	}

	if err := g.importer.ImportOrders(ctx, outputFile); err != nil {
		g.logger.Error("order import failed", zap.String("file", outputFile), zap.Error(err))
		return err
	}

	g.logger.Info("generated orders",
		zap.Int("year", year), zap.Int("month", month),
		zap.Int("count", len(orders)), zap.String("file", outputFile))
	return nil
}

// CurrentMonth generates orders for the current calendar month. An empty
// outputFile selects the default monthly path.
func (g *Generator) CurrentMonth(ctx context.Context, outputFile string, numOrders int, forceNew bool) error {
	now := g.Now()
	year, month := now.Year(), int(now.Month())

	g.logger.Info("generating current month data", zap.Int("year", year), zap.Int("month", month))

	if outputFile == "" {
		outputFile = g.MonthlyFile(year, month)
	}
	return g.MonthlyOrders(ctx, year, month, outputFile, numOrders, forceNew)
}

// MultiYearOptions bounds a multi-year run. Zero values select defaults:
// start = current year minus the configured lookback, end = current
// year/month. A negative OrdersPerMonth selects the configured default.
type MultiYearOptions struct {
	StartYear      int
	EndYear        int
	EndMonth       int
	OrdersPerMonth int
}

// MultiYear generates one monthly report per month in the inclusive range.
// Only the first month forces fresh catalogs; later months reuse the
// persisted ones. A single month's failure is logged and skipped; the run
// succeeds when at least one month succeeded.
func (g *Generator) MultiYear(ctx context.Context, opts MultiYearOptions) error {
	now := g.Now()

	startYear := opts.StartYear
	if startYear == 0 {
		startYear = now.Year() - g.cfg.Generation.LookbackYears
	}
	endYear := opts.EndYear
	if endYear == 0 {
		endYear = now.Year()
	}
	endMonth := opts.EndMonth
	if endMonth == 0 {
		endMonth = int(now.Month())
	}

	if startYear > endYear {
		g.logger.Error("start year after end year", zap.Int("start", startYear), zap.Int("end", endYear))
		return errorbank.Internal("start year cannot be greater than end year")
	}
	if endMonth < 1 || endMonth > 12 {
		g.logger.Error("end month out of range", zap.Int("month", endMonth))
		return errorbank.Internal("end month must be between 1 and 12")
	}

	totalMonths := 0
	for year := startYear; year <= endYear; year++ {
		if year == endYear {
			totalMonths += endMonth
		} else {
			totalMonths += 12
		}
	}

	g.logger.Info("generating multi-year reports",
		zap.Int("months", totalMonths),
		zap.Int("start_year", startYear),
		zap.Int("end_year", endYear),
		zap.Int("end_month", endMonth))

	monthsProcessed := 0
	monthsSucceeded := 0
	forceNew := true

	for year := startYear; year <= endYear; year++ {
		maxMonth := 12
		if year == endYear {
			maxMonth = endMonth
		}

		for month := 1; month <= maxMonth; month++ {
			outputFile := g.MonthlyFile(year, month)
			g.logger.Info("generating month",
				zap.Int("year", year), zap.Int("month", month),
				zap.Int("progress", monthsProcessed+1), zap.Int("total", totalMonths))

			err := g.MonthlyOrders(ctx, year, month, outputFile, opts.OrdersPerMonth, forceNew)
			forceNew = false

			if err != nil {
				g.logger.Error("month failed", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
			} else {
				monthsSucceeded++
			}
			monthsProcessed++
		}
	}

	successRate := 0.0
	if totalMonths > 0 {
		successRate = float64(monthsSucceeded) / float64(totalMonths) * 100
	}
	g.logger.Info("completed multi-year run",
		zap.Int("succeeded", monthsSucceeded),
		zap.Int("total", totalMonths),
		zap.String("success_rate", fmt.Sprintf("%.2f%%", successRate)))

	if monthsSucceeded == 0 {
		return errorbank.Internal("no monthly report succeeded")
	}
	return nil
}

// SingleFile writes one standalone current-month orders file. An empty
// outputFile selects the configured default.
func (g *Generator) SingleFile(ctx context.Context, outputFile string, numOrders int, forceNew bool) error {
	if outputFile == "" {
		outputFile = g.cfg.Paths.SingleOutputFile
	}
	now := g.Now()

	g.logger.Info("generating single orders file", zap.String("file", outputFile), zap.Int("orders", numOrders))
	return g.MonthlyOrders(ctx, now.Year(), int(now.Month()), outputFile, numOrders, forceNew)
}
