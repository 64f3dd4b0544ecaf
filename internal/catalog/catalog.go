package catalog

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/petrogen/internal/csvio"
	"github.com/Additional-Code/petrogen/internal/entity"
	"github.com/Additional-Code/petrogen/internal/rng"
	"github.com/Additional-Code/petrogen/pkg/errorbank"
)

// Provider loads the product and customer catalogs from disk, synthesizing
// and persisting fresh ones when the backing files are absent or a reload
// is forced.
type Provider struct {
	csv    *csvio.Handler
	src    rng.Source
	faker  *gofakeit.Faker
	logger *zap.Logger
}

// Params defines dependencies for constructing a Provider.
type Params struct {
	fx.In

	CSV    *csvio.Handler
	Source rng.Source
	Logger *zap.Logger
}

// Module provides the catalog provider to Fx.
var Module = fx.Provide(NewProvider)

// NewProvider wires a Provider with an unseeded faker.
func NewProvider(p Params) *Provider {
	return New(p.CSV, p.Source, gofakeit.New(0), p.Logger)
}

// New constructs a Provider. Tests pass a seeded faker and source.
func New(csv *csvio.Handler, src rng.Source, faker *gofakeit.Faker, logger *zap.Logger) *Provider {
	return &Provider{csv: csv, src: src, faker: faker, logger: logger}
}

// Products loads the product catalog from productsFile, creating and
// persisting the fixed fuel catalog when forceNew is set or the file does
// not exist. An empty result is a hard failure.
func (p *Provider) Products(productsFile string, forceNew bool) ([]entity.Product, error) {
	var products []entity.Product

	if forceNew || !p.csv.Exists(productsFile) {
		p.logger.Info("creating new products data", zap.String("file", productsFile))
		products = p.createSampleProducts()

		rows := make([][]string, 0, len(products))
		for _, product := range products {
			rows = append(rows, product.ToRow())
		}
		if err := p.csv.Write(productsFile, entity.ProductHeader, rows); err != nil {
			p.logger.Error("failed to write products", zap.String("file", productsFile), zap.Error(err))
			return nil, err
		}
	} else {
		p.logger.Info("reading products", zap.String("file", productsFile))
		rows, err := p.csv.Read(productsFile)
		if err != nil {
			p.logger.Error("error reading products", zap.String("file", productsFile), zap.Error(err))
			return nil, err
		}
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			product, err := entity.ProductFromRow(p.src, row)
			if err != nil {
				return nil, err
			}
			products = append(products, product)
		}
	}

	if len(products) == 0 {
		p.logger.Error("no valid products found", zap.String("file", productsFile))
		return nil, errorbank.EmptyCatalog("no valid products found", errorbank.WithDetail("file", productsFile))
	}

	p.logger.Info("loaded products", zap.Int("count", len(products)))
	return products, nil
}

func (p *Provider) createSampleProducts() []entity.Product {
	products := make([]entity.Product, 0, len(sampleProducts))
	for _, row := range sampleProducts {
		product, err := entity.ProductFromRow(p.src, row)
		if err != nil {
			// The fixed catalog rows always carry code and name.
			continue
		}
		products = append(products, product)
	}
	return products
}

// Customers loads the customer pool with delivery sequences, synthesizing
// numCustomers fresh ones when forceNew is set or either backing file is
// missing. Customers without sequences are dropped. An empty result is a
// hard failure.
func (p *Provider) Customers(customersFile, sequencesFile string, numCustomers int, forceNew bool) ([]entity.Customer, error) {
	var customers []entity.Customer

	if forceNew || !p.csv.Exists(customersFile) || !p.csv.Exists(sequencesFile) {
		p.logger.Info("creating new customer data",
			zap.String("customers", customersFile),
			zap.String("sequences", sequencesFile),
			zap.Int("count", numCustomers))
		customers = p.createSampleCustomers(numCustomers)

		customerRows := make([][]string, 0, len(customers))
		var sequenceRows [][]string
		for _, customer := range customers {
			customerRows = append(customerRows, customer.ToRow())
			for _, seq := range customer.Sequences {
				sequenceRows = append(sequenceRows, []string{
					customer.CustomerID,
					strconv.Itoa(seq.SeqID),
					seq.Description,
				})
			}
		}

		if err := p.csv.Write(customersFile, entity.CustomerHeader, customerRows); err != nil {
			p.logger.Error("failed to write customers", zap.Error(err))
			return nil, err
		}
		if err := p.csv.Write(sequencesFile, entity.SequenceHeader, sequenceRows); err != nil {
			p.logger.Error("failed to write sequences", zap.Error(err))
			return nil, err
		}
	} else {
		p.logger.Info("reading customers",
			zap.String("customers", customersFile),
			zap.String("sequences", sequencesFile))
		loaded, err := p.readCustomers(customersFile, sequencesFile)
		if err != nil {
			p.logger.Error("error reading customer data", zap.Error(err))
			return nil, err
		}
		customers = loaded
	}

	if len(customers) == 0 {
		p.logger.Error("no valid customers found with sequences")
		return nil, errorbank.EmptyCatalog("no valid customers found with sequences")
	}

	p.logger.Info("loaded customers with sequences", zap.Int("count", len(customers)))
	return customers, nil
}

// readCustomers parses both files and attaches sequences by customer id,
// preserving customer file order.
func (p *Provider) readCustomers(customersFile, sequencesFile string) ([]entity.Customer, error) {
	customerRows, err := p.csv.Read(customersFile)
	if err != nil {
		return nil, err
	}

	ordered := make([]*entity.Customer, 0, len(customerRows))
	byID := make(map[string]*entity.Customer, len(customerRows))
	for _, row := range customerRows {
		if len(row) < 2 {
			continue
		}
		customer, err := entity.CustomerFromRow(row)
		if err != nil {
			return nil, err
		}
		c := customer
		ordered = append(ordered, &c)
		byID[c.CustomerID] = &c
	}

	sequenceRows, err := p.csv.Read(sequencesFile)
	if err != nil {
		return nil, err
	}
	for _, row := range sequenceRows {
		if len(row) < 3 {
			continue
		}
		customer, ok := byID[row[0]]
		if !ok {
			continue
		}
		seqID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, errorbank.MalformedRecord("sequence id must be an integer", errorbank.WithCause(err), errorbank.WithDetail("customer", row[0]))
		}
		customer.AddSequence(seqID, row[2])
	}

	customers := make([]entity.Customer, 0, len(ordered))
	for _, customer := range ordered {
		if customer.HasSequences() {
			customers = append(customers, *customer)
		}
	}
	return customers, nil
}

func (p *Provider) createSampleCustomers(numCustomers int) []entity.Customer {
	customers := make([]entity.Customer, 0, numCustomers)

	for i := 1; i <= numCustomers; i++ {
		customer := entity.Customer{
			CustomerID:  fmt.Sprintf("CUST%04d", i),
			Name:        p.faker.Company(),
			Address:     p.faker.Street(),
			City:        p.faker.City(),
			State:       p.faker.StateAbr(),
			Zip:         p.faker.Zip(),
			ContactName: p.faker.Name(),
			Phone:       p.faker.Phone(),
			Email:       p.faker.Email(),
		}

		// Each customer gets 1-5 delivery locations.
		numSequences := p.src.IntBetween(1, 5)
		for j := 1; j <= numSequences; j++ {
			prefix := sequenceDescPrefixes[p.src.IntN(len(sequenceDescPrefixes))]
			customer.AddSequence(j, fmt.Sprintf("%s %d", prefix, j))
		}

		customers = append(customers, customer)
	}

	return customers
}
