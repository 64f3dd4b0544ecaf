package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Paths holds the directory layout and default file locations for the
// generated fixture files.
type Paths struct {
	BaseDir     string
	CSVDir      string
	ProductDir  string
	CustomerDir string
	OrderDir    string
	LogDir      string

	ProductsFile     string
	CustomersFile    string
	SequencesFile    string
	SingleOutputFile string
}

// Generation holds the synthesis defaults.
type Generation struct {
	NumCustomers   int
	OrdersPerMonth int
	LookbackYears  int
}

// Logging configures the zap logger.
type Logging struct {
	Level    string
	Encoding string
	Console  bool
}

// Config wraps all application configuration knobs.
type Config struct {
	Paths      Paths
	Generation Generation
	Logging    Logging
}

// Module wires the configuration loader into the Fx graph.
var Module = fx.Provide(New)

var loadEnvOnce sync.Once

// New builds a Config from environment variables or defaults.
func New() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	baseDir := getEnv("PETROGEN_BASE_DIR", "fuel_orders_data")
	csvDir := filepath.Join(baseDir, "csv_data")
	productDir := filepath.Join(csvDir, "products")
	customerDir := filepath.Join(csvDir, "customers")
	orderDir := filepath.Join(csvDir, "orders")

	cfg := Config{
		Paths: Paths{
			BaseDir:     baseDir,
			CSVDir:      csvDir,
			ProductDir:  productDir,
			CustomerDir: customerDir,
			OrderDir:    orderDir,
			LogDir:      getEnv("PETROGEN_LOG_DIR", "logs"),

			ProductsFile:     filepath.Join(productDir, "products.csv"),
			CustomersFile:    filepath.Join(customerDir, "customers.csv"),
			SequencesFile:    filepath.Join(customerDir, "customer_sequences.csv"),
			SingleOutputFile: getEnv("PETROGEN_SINGLE_OUTPUT_FILE", "customer_orders.csv"),
		},
		Generation: Generation{
			NumCustomers:   getEnvAsInt("PETROGEN_NUM_CUSTOMERS", 20),
			OrdersPerMonth: getEnvAsInt("PETROGEN_ORDERS_PER_MONTH", 50),
			LookbackYears:  getEnvAsInt("PETROGEN_LOOKBACK_YEARS", 5),
		},
		Logging: Logging{
			Level:    getEnv("PETROGEN_LOG_LEVEL", "info"),
			Encoding: getEnv("PETROGEN_LOG_ENCODING", "console"),
			Console:  getEnvAsBool("PETROGEN_LOG_CONSOLE", true),
		},
	}

	if cfg.Generation.NumCustomers <= 0 {
		return Config{}, fmt.Errorf("invalid customer count: %d", cfg.Generation.NumCustomers)
	}
	if cfg.Generation.OrdersPerMonth < 0 {
		return Config{}, fmt.Errorf("invalid orders per month: %d", cfg.Generation.OrdersPerMonth)
	}
	if cfg.Generation.LookbackYears < 0 {
		return Config{}, fmt.Errorf("invalid lookback years: %d", cfg.Generation.LookbackYears)
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Logging.Encoding = strings.ToLower(strings.TrimSpace(cfg.Logging.Encoding))
	switch cfg.Logging.Encoding {
	case "console", "json":
		// supported
	case "":
		cfg.Logging.Encoding = "console"
	default:
		return Config{}, fmt.Errorf("unsupported log encoding: %s", cfg.Logging.Encoding)
	}

	return cfg, nil
}

// EnsureDirectories creates the directory structure for data and log files.
func (c Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.BaseDir,
		c.Paths.CSVDir,
		c.Paths.ProductDir,
		c.Paths.CustomerDir,
		c.Paths.OrderDir,
		c.Paths.LogDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
