package product

import (
	"context"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/stretchr/testify/require"
	"github.com/tradeledger/asset-transfer/common"
	"github.com/tradeledger/asset-transfer/contracts"
	"github.com/tradeledger/asset-transfer/contracts/product"
	"github.com/tradeledger/asset-transfer/ledger"
	"github.com/tradeledger/asset-transfer/rpc/asset"
)

func TestContract(t *testing.T) {
	ctx := context.Background()

	w := ledger.NewWorld(storage.NewMemoryStore(), contracts.Default(), nil)
	t.Cleanup(func() { _ = w.Close() })

	c := New(w)

	require.NoError(t, c.InitLedger(ctx))
	require.NoError(t, c.CreateProduct(ctx, "p1", "Desk", []int{10001}, "Alice"))
	require.ErrorIs(t, c.CreateProduct(ctx, "p1", "Desk", nil, "Bob"), common.ErrAlreadyExists)

	ok, err := c.ProductExists(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)

	old, err := c.TransferPhysicalProduct(ctx, "p1", "Carrier")
	require.NoError(t, err)
	require.Equal(t, "Alice", old)

	old, err = c.TransferVirtualProduct(ctx, "p1", "Bob")
	require.NoError(t, err)
	require.Equal(t, "Alice", old)

	require.NoError(t, c.UpdateAddressToShip(ctx, "p1", "221B Baker St"))
	require.NoError(t, c.UpdateTrackingInfo(ctx, "p1", "TRACK-1"))

	p, err := c.ReadProduct(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, product.Product{
		ID:            "p1",
		Object:        "Desk",
		Pincodes:      []int{10001},
		PhysicalOwner: "Carrier",
		VirtualOwner:  "Bob",
		AddressToShip: "221B Baker St",
		TrackingInfo:  "TRACK-1",
	}, p)

	p.Sold = true
	p.PhysicalOwner = "Bob"
	require.NoError(t, c.UpdateProduct(ctx, p))

	got, err := c.ReadProduct(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, p, got)

	require.ErrorIs(t, c.UpdateProduct(ctx, product.Product{ID: "p2"}), common.ErrNotFound)

	monopoly, err := c.GetAllProductsByObjectType(ctx, "Monopoly")
	require.NoError(t, err)
	require.Len(t, monopoly, 2)

	ok, err = c.GetProductAvailabilityByPincode(ctx, "product5", 80803)
	require.NoError(t, err)
	require.True(t, ok)

	// assets share the keyspace and come back undecoded
	require.NoError(t, asset.New(w).CreateAsset(ctx, "a1", "Desk", []int{1}, "Zed"))

	all, err := c.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)
	require.Nil(t, all[0].Record)
	require.Contains(t, all[0].Raw, `"Owner":"Zed"`)
	require.Equal(t, "p1", all[1].Record.ID)

	desks, err := c.GetAllProductsByObjectType(ctx, "Desk")
	require.NoError(t, err)
	require.Len(t, desks, 1)
}
