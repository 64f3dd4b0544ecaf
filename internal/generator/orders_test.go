package generator_test

import (
	"fmt"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/petrogen/internal/entity"
	"github.com/Additional-Code/petrogen/internal/generator"
	"github.com/Additional-Code/petrogen/internal/rng"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

func testProduct(t *testing.T, src rng.Source) entity.Product {
	t.Helper()
	p, err := entity.ProductFromRow(src, []string{"DSL001", "Diesel"})
	require.NoError(t, err)
	return p
}

func testCustomers(n, sequencesEach int) []entity.Customer {
	customers := make([]entity.Customer, 0, n)
	for i := 1; i <= n; i++ {
		c := entity.Customer{
			CustomerID: fmt.Sprintf("CUST%04d", i),
			Name:       fmt.Sprintf("Customer %d", i),
		}
		for j := 1; j <= sequencesEach; j++ {
			c.AddSequence(j, fmt.Sprintf("Location %d", j))
		}
		customers = append(customers, c)
	}
	return customers
}

func TestOrders(t *testing.T) {
	t.Parallel()

	src := rng.NewSeeded(42)
	products := []entity.Product{testProduct(t, src)}
	customers := testCustomers(5, 3)
	engine := generator.NewEngine(src)

	const count = 200
	orders, err := engine.Orders(products, customers, 2024, 6, count)
	require.NoError(t, err)
	require.Len(t, orders, count)

	t.Run("order numbers are unique and index-based", func(t *testing.T) {
		orderNumberRe := regexp.MustCompile(`^ORD-202406-\d{4}$`)
		seen := map[string]bool{}
		for i, order := range orders {
			assert.Regexp(t, orderNumberRe, order.OrderNumber)
			assert.Equal(t, fmt.Sprintf("ORD-202406-%04d", i+1), order.OrderNumber)
			assert.False(t, seen[order.OrderNumber])
			seen[order.OrderNumber] = true
		}
	})

	t.Run("dates stay in the month and are non-decreasing", func(t *testing.T) {
		first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		prev := first
		for _, order := range orders {
			assert.False(t, order.Date.Before(first))
			assert.False(t, order.Date.After(last))
			assert.False(t, order.Date.Before(prev))
			prev = order.Date
		}
	})

	t.Run("po number is present exactly when required", func(t *testing.T) {
		for i, order := range orders {
			switch order.PORequired {
			case "Yes":
				assert.Equal(t, fmt.Sprintf("PO-202406-%03d", i+1), order.PONumber)
			case "No":
				assert.Empty(t, order.PONumber)
			default:
				t.Fatalf("unexpected PO requirement %q", order.PORequired)
			}
		}
	})

	t.Run("completed orders carry invoice details, others do not", func(t *testing.T) {
		for i, order := range orders {
			switch order.Status {
			case entity.StatusCompleted:
				assert.Equal(t, fmt.Sprintf("INV-202406-%04d", i+1), order.InvoiceNumber)
				require.False(t, order.InvoiceDate.IsZero())
				assert.Equal(t, order.Date.Month(), order.InvoiceDate.Month())
				sameDay := order.InvoiceDate.Equal(order.Date)
				nextDay := order.InvoiceDate.Equal(order.Date.AddDate(0, 0, 1))
				assert.True(t, sameDay || nextDay)
			case entity.StatusInProgress, entity.StatusPending:
				assert.Empty(t, order.InvoiceNumber)
				assert.True(t, order.InvoiceDate.IsZero())
			default:
				t.Fatalf("unexpected status %q", order.Status)
			}
		}
	})

	t.Run("bol is always assigned", func(t *testing.T) {
		for i, order := range orders {
			assert.Equal(t, fmt.Sprintf("BOL-202406-%04d", i+1), order.BOL)
		}
	})

	t.Run("price and quantity respect their bounds", func(t *testing.T) {
		p := products[0]
		for _, order := range orders {
			assert.Equal(t, "Diesel", order.ProductName)
			assert.GreaterOrEqual(t, order.UnitPrice, p.MinPrice)
			assert.LessOrEqual(t, order.UnitPrice, p.MaxPrice)
			assert.GreaterOrEqual(t, order.Quantity, 200)
			assert.LessOrEqual(t, order.Quantity, 3500)
			assert.Zero(t, order.Quantity%10)
		}
	})

	t.Run("charges are attached consistently", func(t *testing.T) {
		for _, order := range orders {
			if order.AdditionalProduct == "" {
				assert.False(t, order.Charges.Applied)
				assert.False(t, order.SpecialCharges.Applied)
				continue
			}
			assert.True(t, order.Charges.Applied)
			assert.Greater(t, order.Charges.Amount, 0.0)
			if order.SpecialCharges.Applied {
				assert.GreaterOrEqual(t, order.SpecialCharges.Amount, 10.0)
				assert.LessOrEqual(t, order.SpecialCharges.Amount, 50.0)
			}
		}
	})

	t.Run("totals follow the derivation formula", func(t *testing.T) {
		for _, order := range orders {
			mainCharges := math.Round(order.UnitPrice*float64(order.Quantity)*100) / 100
			expected := mainCharges + order.Charges.Value() + order.SpecialCharges.Value() +
				order.TotalTaxes - order.ExemptTaxes
			assert.InDelta(t, expected, order.Total, 1e-6)
			margin := math.Round((mainCharges-order.TotalCost)/float64(order.Quantity)*1000) / 1000
			assert.InDelta(t, margin, order.MarginPerGallon, 1e-9)
		}
	})

	t.Run("sequences belong to the chosen customer", func(t *testing.T) {
		for _, order := range orders {
			assert.GreaterOrEqual(t, order.SequenceID, 1)
			assert.LessOrEqual(t, order.SequenceID, 3)
			assert.Equal(t, fmt.Sprintf("Location %d", order.SequenceID), order.SequenceDesc)
		}
	})
}

func TestOrdersLeapFebruary(t *testing.T) {
	t.Parallel()

	src := rng.NewSeeded(7)
	products := []entity.Product{testProduct(t, src)}
	customers := testCustomers(5, 1)
	engine := generator.NewEngine(src)

	orders, err := engine.Orders(products, customers, 2024, 2, 29)
	require.NoError(t, err)
	require.Len(t, orders, 29)

	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	for _, order := range orders {
		assert.False(t, order.Date.Before(first))
		assert.False(t, order.Date.After(last))
		assert.Equal(t, 1, order.SequenceID)
	}
}

func TestOrdersEdgeCases(t *testing.T) {
	t.Parallel()

	src := rng.NewSeeded(13)
	products := []entity.Product{testProduct(t, src)}
	customers := testCustomers(2, 2)
	engine := generator.NewEngine(src)

	t.Run("zero count returns an empty batch", func(t *testing.T) {
		t.Parallel()

		orders, err := engine.Orders(products, customers, 2024, 1, 0)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("negative count fails", func(t *testing.T) {
		t.Parallel()

		_, err := engine.Orders(products, customers, 2024, 1, -1)
		assert.Error(t, err)
	})

	t.Run("month out of range fails", func(t *testing.T) {
		t.Parallel()

		_, err := engine.Orders(products, customers, 2024, 13, 5)
		require.Error(t, err)
		details := errorbank.From(err).Details()
		assert.Equal(t, 2024, details["year"])
		assert.Equal(t, 13, details["month"])
	})

	t.Run("empty pools fail fast", func(t *testing.T) {
		t.Parallel()

		_, err := engine.Orders(nil, customers, 2024, 1, 5)
		assert.True(t, errorbank.IsKind(err, errorbank.KindEmptyCatalog))

		_, err = engine.Orders(products, nil, 2024, 1, 5)
		assert.True(t, errorbank.IsKind(err, errorbank.KindEmptyCatalog))
	})
}
