package catalog

// sampleProducts is the fixed fuel catalog written when no products file
// exists. Columns follow entity.ProductHeader.
var sampleProducts = [][]string{
	{"REG001", "Regular Gasoline", "REG", "Fuel", "C1", "Direct", "Retail", "T1", "Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "0123456789"},
	{"PRM001", "Premium Gasoline", "PRM", "Fuel", "C1", "Direct", "Retail", "T1", "Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "1234567890"},
	{"DSL001", "Diesel", "DSL", "Fuel", "C2", "Direct", "Commercial", "T1", "Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "2345678901"},
	{"KRS001", "Kerosene", "KRS", "Fuel", "C2", "Direct", "Commercial", "T1", "Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "3456789012"},
	{"ETH001", "Ethanol", "ETH", "Fuel", "C3", "Direct", "Retail", "T2", "Alt Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "4567890123"},
	{"BIO001", "Biodiesel", "BIO", "Fuel", "C3", "Direct", "Commercial", "T2", "Alt Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "5678901234"},
	{"E85001", "E85 Fuel", "E85", "Fuel", "C3", "Direct", "Retail", "T2", "Alt Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "6789012345"},
	{"DNF001", "Diesel No Freeze", "DNF", "Fuel", "C2", "Direct", "Commercial", "T1", "Fuel Tax", "Bulk", "Gallon", "Active", "Yes", "7890123456"},
	{"JET001", "Jet Fuel", "JET", "Fuel", "C4", "Direct", "Aviation", "T3", "Aviation Tax", "Bulk", "Gallon", "Active", "Yes", "8901234567"},
	{"AVG001", "Aviation Gasoline", "AVG", "Fuel", "C4", "Direct", "Aviation", "T3", "Aviation Tax", "Bulk", "Gallon", "Active", "Yes", "9012345678"},
}

// StandardCharge is a named add-on service with a fixed price.
type StandardCharge struct {
	Name  string
	Price float64
}

// StandardCharges lists the add-on services an order can carry.
var StandardCharges = []StandardCharge{
	{Name: "Labor Charge", Price: 85.00},
	{Name: "Pump Fee", Price: 45.00},
	{Name: "After Hours Fee", Price: 125.00},
	{Name: "Weekend Delivery", Price: 75.00},
	{Name: "Rush Delivery", Price: 95.00},
}

// sequenceDescPrefixes name the kinds of delivery locations a synthesized
// customer can have; the sequence index is appended.
var sequenceDescPrefixes = []string{
	"Location", "Facility", "Building", "Warehouse", "Tank", "Station",
}
