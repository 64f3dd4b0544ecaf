package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Additional-Code/petrogen/internal/app"
	"github.com/Additional-Code/petrogen/internal/report"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// NewRootCommand builds the root petrogen CLI command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "petrogen",
		Short: "Petroleum order fixture generator",
	}

	root.AddCommand(newMonthlyCmd())
	root.AddCommand(newMultiYearCmd())
	root.AddCommand(newSingleCmd())

	return root
}

// Execute runs the petrogen CLI.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		appErr := errorbank.From(err)
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", appErr.Kind(), appErr)
		return appErr
	}
	return nil
}

func newMonthlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Generate order data for the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, _ := cmd.Flags().GetInt("orders")
			forceNew, _ := cmd.Flags().GetBool("force-new")
			output, _ := cmd.Flags().GetString("output")

			var gen *report.Generator
			opts := fx.Options(app.Core, fx.Populate(&gen))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				return gen.CurrentMonth(ctx, output, orders, forceNew)
			})
		},
	}
	cmd.Flags().Int("orders", -1, "Number of orders to generate (defaults to the configured per-month count)")
	cmd.Flags().Bool("force-new", false, "Force creation of new product and customer data")
	cmd.Flags().String("output", "", "Custom output file path (optional)")
	return cmd
}

func newMultiYearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiyear",
		Short: "Generate order data for a range of years",
		RunE: func(cmd *cobra.Command, args []string) error {
			auto, _ := cmd.Flags().GetBool("auto")
			startYear, _ := cmd.Flags().GetInt("start-year")
			endYear, _ := cmd.Flags().GetInt("end-year")
			endMonth, _ := cmd.Flags().GetInt("end-month")
			orders, _ := cmd.Flags().GetInt("orders")

			var gen *report.Generator
			opts := fx.Options(app.Core, fx.Populate(&gen))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				if auto {
					return gen.CurrentMonth(ctx, "", orders, false)
				}
				return gen.MultiYear(ctx, report.MultiYearOptions{
					StartYear:      startYear,
					EndYear:        endYear,
					EndMonth:       endMonth,
					OrdersPerMonth: orders,
				})
			})
		},
	}
	cmd.Flags().Bool("auto", false, "Generate only the current month (for automated scheduling)")
	cmd.Flags().Int("start-year", 0, "Starting year (defaults to the configured lookback before the current year)")
	cmd.Flags().Int("end-year", 0, "Ending year (defaults to the current year)")
	cmd.Flags().Int("end-month", 0, "Ending month (defaults to the current month)")
	cmd.Flags().Int("orders", -1, "Number of orders per month (defaults to the configured per-month count)")
	return cmd
}

func newSingleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "single",
		Short: "Generate a single standalone orders file",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, _ := cmd.Flags().GetInt("orders")
			output, _ := cmd.Flags().GetString("output")
			forceNew, _ := cmd.Flags().GetBool("force-new")

			var gen *report.Generator
			opts := fx.Options(app.Core, fx.Populate(&gen))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				return gen.SingleFile(ctx, output, orders, forceNew)
			})
		},
	}
	cmd.Flags().Int("orders", -1, "Number of orders to generate (defaults to the configured per-month count)")
	cmd.Flags().String("output", "", "Output file path (defaults to the configured single-file path)")
	cmd.Flags().Bool("force-new", false, "Force creation of new product and customer data")
	return cmd
}

func runWithApp(ctx context.Context, opts fx.Option, fn func(context.Context) error) error {
	application := fx.New(opts, fx.NopLogger)
	if err := application.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = application.Stop(stopCtx)
	}()
	return fn(ctx)
}
