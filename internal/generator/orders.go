package generator

import (
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/fx"

	"github.com/Additional-Code/petrogen/internal/catalog"
	"github.com/Additional-Code/petrogen/internal/entity"
	"github.com/Additional-Code/petrogen/internal/rng"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// Attribute distributions for synthesized orders.
var (
	statusWeights = []rng.Weighted{
		{Value: entity.StatusCompleted, Weight: 90},
		{Value: entity.StatusInProgress, Weight: 5},
		{Value: entity.StatusPending, Weight: 5},
	}
	poRequiredWeights = []rng.Weighted{
		{Value: "Yes", Weight: 60},
		{Value: "No", Weight: 40},
	}
)

const (
	additionalChargeProbability = 0.10
	specialChargeProbability    = 0.30
)

// Engine synthesizes order batches from a product catalog and customer pool.
type Engine struct {
	src rng.Source
}

// Module provides the order synthesis engine to Fx.
var Module = fx.Provide(NewEngine)

// NewEngine constructs an Engine on the given randomness source.
func NewEngine(src rng.Source) *Engine {
	return &Engine{src: src}
}

// Orders generates count orders for the given calendar month. Delivery
// dates are drawn up front and sorted ascending, so the batch reads
// chronologically; order numbers follow the generation index 1..count and
// are deliberately independent of which date each order ends up with.
func (e *Engine) Orders(products []entity.Product, customers []entity.Customer, year, month, count int) ([]entity.Order, error) {
	if month < 1 || month > 12 {
		return nil, errorbank.Internal("month must be between 1 and 12",
			errorbank.WithDetails(map[string]any{"year": year, "month": month}))
	}
	if count < 0 {
		return nil, errorbank.Internal("order count must not be negative", errorbank.WithDetail("count", count))
	}
	if len(products) == 0 {
		return nil, errorbank.EmptyCatalog("order generation requires at least one product")
	}
	if len(customers) == 0 {
		return nil, errorbank.EmptyCatalog("order generation requires at least one customer")
	}

	// Pre-draw and sort the delivery dates; everything else is drawn per
	// order inside the loop.
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = e.dateInMonth(year, month)
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	monthYear := fmt.Sprintf("%d%02d", year, month)

	orders := make([]entity.Order, 0, count)
	for i := 0; i < count; i++ {
		customer := customers[e.src.IntN(len(customers))]
		if !customer.HasSequences() {
			return nil, errorbank.EmptyCatalog("customer has no delivery sequences", errorbank.WithDetail("customer", customer.CustomerID))
		}
		sequence := customer.Sequences[e.src.IntN(len(customer.Sequences))]

		poRequired := rng.PickWeighted(e.src, poRequiredWeights)
		poNumber := ""
		if poRequired == "Yes" {
			poNumber = fmt.Sprintf("PO-%s-%03d", monthYear, i+1)
		}

		date := dates[i]
		status := rng.PickWeighted(e.src, statusWeights)

		invoiceNumber := ""
		var invoiceDate time.Time
		if status == entity.StatusCompleted {
			invoiceNumber = fmt.Sprintf("INV-%s-%04d", monthYear, i+1)

			// Invoicing usually happens the day after delivery, but never
			// spills into the next month.
			invoiceDate = date.AddDate(0, 0, 1)
			if invoiceDate.Month() != date.Month() {
				invoiceDate = date
			}
		}

		product := products[e.src.IntN(len(products))]

		order := entity.Order{
			CustomerName:  customer.Name,
			OrderNumber:   fmt.Sprintf("ORD-%s-%04d", monthYear, i+1),
			SequenceID:    sequence.SeqID,
			SequenceDesc:  sequence.Description,
			PONumber:      poNumber,
			PORequired:    poRequired,
			Date:          date,
			Status:        status,
			InvoiceNumber: invoiceNumber,
			InvoiceDate:   invoiceDate,
			BOL:           fmt.Sprintf("BOL-%s-%04d", monthYear, i+1),
			ProductName:   product.Name,
			UnitPrice:     product.RandomPrice(e.src),
			Quantity:      e.src.IntBetween(20, 350) * 10,
		}

		if e.src.Chance(additionalChargeProbability) {
			charge := catalog.StandardCharges[e.src.IntN(len(catalog.StandardCharges))]
			order.AdditionalProduct = charge.Name
			order.Charges = entity.AppliedCharge(charge.Price)

			// Special charges only ever ride on top of a standard charge.
			if e.src.Chance(specialChargeProbability) {
				amount := math.Round(e.src.Float64Between(10, 50)*100) / 100
				order.SpecialCharges = entity.AppliedCharge(amount)
			}
		}

		order.DeriveFinancials(e.src)
		orders = append(orders, order)
	}

	return orders, nil
}

// dateInMonth draws a uniform date within the month, leap years included.
func (e *Engine) dateInMonth(year, month int) time.Time {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := e.src.IntBetween(1, daysInMonth)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
