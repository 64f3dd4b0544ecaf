package entity

import (
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// CustomerHeader lists the customers report columns in serialization order.
var CustomerHeader = []string{
	"CustomerID", "CustomerName", "Address", "City", "State", "Zip",
	"ContactName", "Phone", "Email",
}

// SequenceHeader lists the sequences report columns; many rows per customer.
var SequenceHeader = []string{"CustomerID", "SequenceID", "SequenceDesc"}

// Sequence is a customer's named delivery location. It has no existence
// outside its owning customer.
type Sequence struct {
	SeqID       int
	Description string
}

// Customer is a petroleum customer owning an ordered, append-only set of
// delivery sequences.
type Customer struct {
	CustomerID  string
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	ContactName string
	Phone       string
	Email       string
	Sequences   []Sequence
}

// CustomerFromRow builds a Customer from a report row. The row must carry at
// least the customer id and name; sequences are attached separately.
func CustomerFromRow(row []string) (Customer, error) {
	if len(row) < 2 {
		return Customer{}, errorbank.MissingFields("customer row must include at least id and name", errorbank.WithDetail("fields", len(row)))
	}
	if row[0] == "" || row[1] == "" {
		return Customer{}, errorbank.MalformedRecord("customer id and name are required")
	}

	return Customer{
		CustomerID:  row[0],
		Name:        row[1],
		Address:     fieldAt(row, 2, ""),
		City:        fieldAt(row, 3, ""),
		State:       fieldAt(row, 4, ""),
		Zip:         fieldAt(row, 5, ""),
		ContactName: fieldAt(row, 6, ""),
		Phone:       fieldAt(row, 7, ""),
		Email:       fieldAt(row, 8, ""),
	}, nil
}

// ToRow serializes the customer; sequences are serialized separately.
func (c Customer) ToRow() []string {
	return []string{
		c.CustomerID,
		c.Name,
		c.Address,
		c.City,
		c.State,
		c.Zip,
		c.ContactName,
		c.Phone,
		c.Email,
	}
}

// AddSequence appends a delivery sequence to the customer.
func (c *Customer) AddSequence(seqID int, description string) {
	c.Sequences = append(c.Sequences, Sequence{SeqID: seqID, Description: description})
}

// HasSequences reports whether the customer owns at least one sequence.
// Customers without sequences cannot receive orders.
func (c Customer) HasSequences() bool {
	return len(c.Sequences) > 0
}
