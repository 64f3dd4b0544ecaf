package report_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/petrogen/internal/catalog"
	"github.com/Additional-Code/petrogen/internal/config"
	"github.com/Additional-Code/petrogen/internal/csvio"
	"github.com/Additional-Code/petrogen/internal/dbadapter"
	"github.com/Additional-Code/petrogen/internal/generator"
	"github.com/Additional-Code/petrogen/internal/report"
	"github.com/Additional-Code/petrogen/internal/rng"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	base := filepath.Join(t.TempDir(), "fuel_orders_data")
	csvDir := filepath.Join(base, "csv_data")
	productDir := filepath.Join(csvDir, "products")
	customerDir := filepath.Join(csvDir, "customers")
	orderDir := filepath.Join(csvDir, "orders")

	return config.Config{
		Paths: config.Paths{
			BaseDir:     base,
			CSVDir:      csvDir,
			ProductDir:  productDir,
			CustomerDir: customerDir,
			OrderDir:    orderDir,
			LogDir:      filepath.Join(base, "logs"),

			ProductsFile:     filepath.Join(productDir, "products.csv"),
			CustomersFile:    filepath.Join(customerDir, "customers.csv"),
			SequencesFile:    filepath.Join(customerDir, "customer_sequences.csv"),
			SingleOutputFile: filepath.Join(base, "customer_orders.csv"),
		},
		Generation: config.Generation{
			NumCustomers:   5,
			OrdersPerMonth: 10,
			LookbackYears:  5,
		},
		Logging: config.Logging{Level: "info", Encoding: "console", Console: false},
	}
}

func newTestGenerator(t *testing.T, seed uint64) (*report.Generator, config.Config) {
	t.Helper()

	cfg := testConfig(t)
	handler := csvio.NewHandler()
	src := rng.NewSeeded(seed)
	logger := zap.NewNop()

	gen, err := report.NewGenerator(report.Params{
		Config:   cfg,
		Catalog:  catalog.New(handler, src, gofakeit.New(seed), logger),
		Engine:   generator.NewEngine(src),
		CSV:      handler,
		Importer: dbadapter.NewNoop(logger),
		Logger:   logger,
	})
	require.NoError(t, err)
	gen.Now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return gen, cfg
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	rows, err := csvio.NewHandler().Read(path)
	require.NoError(t, err)
	return len(rows)
}

func TestMonthlyOrders(t *testing.T) {
	t.Parallel()

	t.Run("writes the requested batch and the catalogs", func(t *testing.T) {
		t.Parallel()

		gen, cfg := newTestGenerator(t, 1)
		out := filepath.Join(cfg.Paths.OrderDir, "orders_2023_07.csv")

		require.NoError(t, gen.MonthlyOrders(context.Background(), 2023, 7, out, 25, true))
		assert.Equal(t, 25, countRows(t, out))
		assert.FileExists(t, cfg.Paths.ProductsFile)
		assert.FileExists(t, cfg.Paths.CustomersFile)
		assert.FileExists(t, cfg.Paths.SequencesFile)
	})

	t.Run("negative count falls back to the configured default", func(t *testing.T) {
		t.Parallel()

		gen, cfg := newTestGenerator(t, 2)
		out := filepath.Join(cfg.Paths.OrderDir, "orders_2023_07.csv")

		require.NoError(t, gen.MonthlyOrders(context.Background(), 2023, 7, out, -1, true))
		assert.Equal(t, cfg.Generation.OrdersPerMonth, countRows(t, out))
	})

	t.Run("zero count still writes a valid report", func(t *testing.T) {
		t.Parallel()

		gen, cfg := newTestGenerator(t, 3)
		out := filepath.Join(cfg.Paths.OrderDir, "orders_2023_08.csv")

		require.NoError(t, gen.MonthlyOrders(context.Background(), 2023, 8, out, 0, true))
		assert.Equal(t, 0, countRows(t, out))
	})

	t.Run("invalid month fails without writing", func(t *testing.T) {
		t.Parallel()

		gen, cfg := newTestGenerator(t, 4)
		out := filepath.Join(cfg.Paths.OrderDir, "orders_2023_13.csv")

		assert.Error(t, gen.MonthlyOrders(context.Background(), 2023, 13, out, 5, true))
		assert.NoFileExists(t, out)
	})
}

func TestCurrentMonth(t *testing.T) {
	t.Parallel()

	gen, cfg := newTestGenerator(t, 5)

	require.NoError(t, gen.CurrentMonth(context.Background(), "", 8, true))

	out := filepath.Join(cfg.Paths.OrderDir, "orders_2024_03.csv")
	assert.Equal(t, 8, countRows(t, out))
}

func TestMultiYear(t *testing.T) {
	t.Parallel()

	t.Run("generates every month in the inclusive range", func(t *testing.T) {
		t.Parallel()

		gen, cfg := newTestGenerator(t, 6)

		err := gen.MultiYear(context.Background(), report.MultiYearOptions{
			StartYear:      2023,
			EndYear:        2024,
			EndMonth:       2,
			OrdersPerMonth: 3,
		})
		require.NoError(t, err)

		for month := 1; month <= 12; month++ {
			assert.Equal(t, 3, countRows(t, gen.MonthlyFile(2023, month)))
		}
		assert.Equal(t, 3, countRows(t, gen.MonthlyFile(2024, 1)))
		assert.Equal(t, 3, countRows(t, gen.MonthlyFile(2024, 2)))
		assert.NoFileExists(t, filepath.Join(cfg.Paths.OrderDir, "orders_2024_03.csv"))
	})

	t.Run("defaults cover the lookback window up to now", func(t *testing.T) {
		t.Parallel()

		gen, _ := newTestGenerator(t, 7)

		require.NoError(t, gen.MultiYear(context.Background(), report.MultiYearOptions{
			StartYear:      2024, // now is 2024-03-15
			OrdersPerMonth: 2,
		}))
		assert.Equal(t, 2, countRows(t, gen.MonthlyFile(2024, 1)))
		assert.Equal(t, 2, countRows(t, gen.MonthlyFile(2024, 3)))
	})

	t.Run("start year after end year fails", func(t *testing.T) {
		t.Parallel()

		gen, _ := newTestGenerator(t, 8)
		err := gen.MultiYear(context.Background(), report.MultiYearOptions{
			StartYear: 2025,
			EndYear:   2024,
			EndMonth:  6,
		})
		assert.Error(t, err)
	})
}

func TestSingleFile(t *testing.T) {
	t.Parallel()

	gen, cfg := newTestGenerator(t, 9)

	require.NoError(t, gen.SingleFile(context.Background(), "", 12, true))
	assert.Equal(t, 12, countRows(t, cfg.Paths.SingleOutputFile))
}
