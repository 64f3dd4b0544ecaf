package entity

import (
	"github.com/Additional-Code/petrogen/internal/rng"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// ProductHeader lists the products report columns in serialization order.
var ProductHeader = []string{
	"Product Code", "ProductName", "Abbrev", "Product Group", "CycleCode",
	"Method", "Account Group", "Tax Profile", "Tax Group", "Packaging",
	"Unit of Measure", "Status", "Stocked", "UPC Code",
}

// Global bounds for the per-product price band.
const (
	minPriceFloor = 2.50
	minPriceCeil  = 3.20
	maxPriceFloor = 3.50
	maxPriceCeil  = 4.50
)

// Product is a petroleum product with a randomly assigned price band.
type Product struct {
	Code          string
	Name          string
	Abbrev        string
	ProductGroup  string
	CycleCode     string
	Method        string
	AccountGroup  string
	TaxProfile    string
	TaxGroup      string
	Packaging     string
	UnitOfMeasure string
	Status        string
	Stocked       string
	UPCCode       string

	// Price band; assigned at construction and never persisted. Each parse
	// of a product row redraws the band.
	MinPrice float64
	MaxPrice float64
}

// ProductFromRow builds a Product from a report row. The row must carry at
// least the product code and name; trailing optional fields take their
// documented defaults. The price band is freshly drawn on every call.
func ProductFromRow(src rng.Source, row []string) (Product, error) {
	if len(row) < 2 {
		return Product{}, errorbank.MissingFields("product row must include at least code and name", errorbank.WithDetail("fields", len(row)))
	}
	if row[0] == "" || row[1] == "" {
		return Product{}, errorbank.MalformedRecord("product code and name are required")
	}

	p := Product{
		Code:          row[0],
		Name:          row[1],
		Abbrev:        fieldAt(row, 2, ""),
		ProductGroup:  fieldAt(row, 3, "Fuel"),
		CycleCode:     fieldAt(row, 4, ""),
		Method:        fieldAt(row, 5, "Direct"),
		AccountGroup:  fieldAt(row, 6, ""),
		TaxProfile:    fieldAt(row, 7, ""),
		TaxGroup:      fieldAt(row, 8, ""),
		Packaging:     fieldAt(row, 9, "Bulk"),
		UnitOfMeasure: fieldAt(row, 10, "Gallon"),
		Status:        fieldAt(row, 11, "Active"),
		Stocked:       fieldAt(row, 12, "Yes"),
		UPCCode:       fieldAt(row, 13, ""),
	}

	p.MinPrice = roundCents(src.Float64Between(minPriceFloor, minPriceCeil))
	p.MaxPrice = roundCents(src.Float64Between(maxPriceFloor, maxPriceCeil))

	return p, nil
}

// ToRow serializes the product. The price band is derived state and is not
// part of the row.
func (p Product) ToRow() []string {
	return []string{
		p.Code,
		p.Name,
		p.Abbrev,
		p.ProductGroup,
		p.CycleCode,
		p.Method,
		p.AccountGroup,
		p.TaxProfile,
		p.TaxGroup,
		p.Packaging,
		p.UnitOfMeasure,
		p.Status,
		p.Stocked,
		p.UPCCode,
	}
}

// RandomPrice draws a unit price within the product's band, in cents.
func (p Product) RandomPrice(src rng.Source) float64 {
	return roundCents(src.Float64Between(p.MinPrice, p.MaxPrice))
}
