package dbadapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Additional-Code/petrogen/internal/dbadapter"
)

func TestNoopImporter(t *testing.T) {
	t.Parallel()

	imp := dbadapter.NewNoop(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, imp.ImportProducts(ctx, "products.csv"))
	assert.NoError(t, imp.ImportCustomers(ctx, "customers.csv", "customer_sequences.csv"))
	assert.NoError(t, imp.ImportOrders(ctx, "orders.csv"))
	assert.NoError(t, imp.Close())
}
