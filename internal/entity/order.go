package entity

import (
	"strconv"
	"time"

	"github.com/Additional-Code/petrogen/internal/rng"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// OrderHeader lists the orders report columns in serialization order. The
// literal "Product" column appears twice: the base product and the optional
// additional product.
var OrderHeader = []string{
	"CustomerName", "Order#", "Seq", "Seq Desc", "PO #", "PO Req", "Date",
	"Status", "Invoice#", "Invoice Date", "BOL", "Product", "Unit Price",
	"Quantity", "Product", "Charges", "Special Charges", "Total Taxes",
	"Total", "Exempt Taxes", "Total Cost", "Margin Per Gallon",
}

// DateLayout is the report date format.
const DateLayout = "01/02/2006"

// Order lifecycle statuses.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusPending    = "Pending"
)

// orderMinFields is the minimum row length accepted by OrderFromRow.
const orderMinFields = 14

// costRatio is the fixed ratio of cost to main charges.
const costRatio = 0.85

// Order is a generated petroleum order. Stable fields are assigned at
// construction; the derived financial fields are only valid after
// DeriveFinancials has run, and a raw order must never be serialized.
type Order struct {
	CustomerName string
	OrderNumber  string
	SequenceID   int
	SequenceDesc string
	PONumber     string
	PORequired   string
	Date         time.Time
	Status       string

	InvoiceNumber string
	InvoiceDate   time.Time // zero when not invoiced
	BOL           string

	ProductName string
	UnitPrice   float64
	Quantity    int

	AdditionalProduct string
	Charges           Charge
	SpecialCharges    Charge

	// Derived by DeriveFinancials.
	TotalTaxes      float64
	ExemptTaxes     float64
	Total           float64
	TotalCost       float64
	MarginPerGallon float64
}

// ToRow serializes the order for the orders report.
func (o Order) ToRow() []string {
	date := ""
	if !o.Date.IsZero() {
		date = o.Date.Format(DateLayout)
	}
	invoiceDate := ""
	if !o.InvoiceDate.IsZero() {
		invoiceDate = o.InvoiceDate.Format(DateLayout)
	}

	return []string{
		o.CustomerName,
		o.OrderNumber,
		strconv.Itoa(o.SequenceID),
		o.SequenceDesc,
		o.PONumber,
		o.PORequired,
		date,
		o.Status,
		o.InvoiceNumber,
		invoiceDate,
		o.BOL,
		o.ProductName,
		formatFloat(o.UnitPrice),
		strconv.Itoa(o.Quantity),
		o.AdditionalProduct,
		o.Charges.String(),
		o.SpecialCharges.String(),
		formatFloat(o.TotalTaxes),
		formatFloat(o.Total),
		formatFloat(o.ExemptTaxes),
		formatFloat(o.TotalCost),
		formatFloat(o.MarginPerGallon),
	}
}

// OrderFromRow builds an Order from a report row. Customer name and order
// number are mandatory; numeric fields degrade to zero values on parse
// failure and charge fields degrade to "not applied".
func OrderFromRow(row []string) (Order, error) {
	if len(row) < orderMinFields {
		return Order{}, errorbank.MissingFields("order row is missing required fields", errorbank.WithDetail("fields", len(row)))
	}
	if row[0] == "" || row[1] == "" {
		return Order{}, errorbank.MalformedRecord("order customer name and order number are required")
	}

	o := Order{
		CustomerName:      row[0],
		OrderNumber:       row[1],
		SequenceID:        parseIntOrZero(row[2]),
		SequenceDesc:      row[3],
		PONumber:          row[4],
		PORequired:        row[5],
		Date:              parseDateOrZero(row[6]),
		Status:            row[7],
		InvoiceNumber:     row[8],
		InvoiceDate:       parseDateOrZero(row[9]),
		BOL:               row[10],
		ProductName:       row[11],
		UnitPrice:         parseFloatOrZero(row[12]),
		Quantity:          parseIntOrZero(row[13]),
		AdditionalProduct: fieldAt(row, 14, ""),
		Charges:           ParseCharge(fieldAt(row, 15, "")),
		SpecialCharges:    ParseCharge(fieldAt(row, 16, "")),
		TotalTaxes:        parseFloatOrZero(fieldAt(row, 17, "")),
		Total:             parseFloatOrZero(fieldAt(row, 18, "")),
		ExemptTaxes:       parseFloatOrZero(fieldAt(row, 19, "")),
		TotalCost:         parseFloatOrZero(fieldAt(row, 20, "")),
		MarginPerGallon:   parseFloatOrZero(fieldAt(row, 21, "")),
	}

	return o, nil
}

// DeriveFinancials computes taxes, totals, cost, and margin from the order's
// price, quantity, and charges. It draws fresh randomness for the tax and
// exemption rates, so it is not idempotent; call it exactly once per order.
func (o *Order) DeriveFinancials(src rng.Source) {
	mainCharges := roundCents(o.UnitPrice * float64(o.Quantity))

	taxRate := src.Float64Between(0.05, 0.10)
	o.TotalTaxes = roundCents(mainCharges * taxRate)
	o.ExemptTaxes = roundCents(src.Float64Between(0, o.TotalTaxes*0.3))

	// The grand total intentionally keeps full float precision.
	o.Total = mainCharges + o.Charges.Value() + o.SpecialCharges.Value() + o.TotalTaxes - o.ExemptTaxes

	o.TotalCost = roundCents(mainCharges * costRatio)

	if o.Quantity > 0 {
		o.MarginPerGallon = roundMils((mainCharges - o.TotalCost) / float64(o.Quantity))
	} else {
		o.MarginPerGallon = 0
	}
}

func parseDateOrZero(field string) time.Time {
	if field == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, field)
	if err != nil {
		return time.Time{}
	}
	return t
}
