// Package product contains typed wrappers for ProductTransfer contract.
package product

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/tradeledger/asset-transfer/contracts"
	"github.com/tradeledger/asset-transfer/contracts/product"
	"github.com/tradeledger/asset-transfer/rpc/unwrap"
)

// Invoker is used by ContractReader to call safe methods.
type Invoker interface {
	Call(ctx context.Context, method string, args ...string) ([]byte, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	Submit(ctx context.Context, method string, args ...string) ([]byte, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
}

// NewReader creates an instance of ContractReader using the given Invoker.
func NewReader(invoker Invoker) *ContractReader {
	return &ContractReader{invoker}
}

// New creates an instance of Contract using the given Actor.
func New(actor Actor) *Contract {
	return &Contract{ContractReader{actor}, actor}
}

func method(name string) string {
	return product.ContractName + contracts.Separator + name
}

func encodePincodes(pincodes []int) string {
	if pincodes == nil {
		pincodes = []int{}
	}
	b, _ := json.Marshal(pincodes)
	return string(b)
}

// ReadProduct invokes `ReadProduct` method of contract.
func (c *ContractReader) ReadProduct(ctx context.Context, id string) (product.Product, error) {
	return unwrap.JSON[product.Product](c.invoker.Call(ctx, method("ReadProduct"), id))
}

// ProductExists invokes `ProductExists` method of contract.
func (c *ContractReader) ProductExists(ctx context.Context, id string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(ctx, method("ProductExists"), id))
}

// GetAllProducts invokes `GetAllProducts` method of contract.
func (c *ContractReader) GetAllProducts(ctx context.Context) ([]product.Entry, error) {
	return unwrap.Entries[product.Product](c.invoker.Call(ctx, method("GetAllProducts")))
}

// GetAllProductsByObjectType invokes `GetAllProductsByObjectType` method of contract.
func (c *ContractReader) GetAllProductsByObjectType(ctx context.Context, object string) ([]product.Product, error) {
	return unwrap.JSON[[]product.Product](c.invoker.Call(ctx, method("GetAllProductsByObjectType"), object))
}

// GetProductAvailabilityByPincode invokes `GetProductAvailabilityByPincode` method of contract.
func (c *ContractReader) GetProductAvailabilityByPincode(ctx context.Context, id string, pincode int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(ctx, method("GetProductAvailabilityByPincode"), id, strconv.Itoa(pincode)))
}

// InitLedger creates a transaction invoking `InitLedger` method of contract.
func (c *Contract) InitLedger(ctx context.Context) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("InitLedger")))
}

// CreateProduct creates a transaction invoking `CreateProduct` method of contract.
func (c *Contract) CreateProduct(ctx context.Context, id, object string, pincodes []int, owner string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("CreateProduct"), id, object, encodePincodes(pincodes), owner))
}

// UpdateProduct creates a transaction invoking `UpdateAsset` method of
// contract overwriting the product identified by p.ID.
func (c *Contract) UpdateProduct(ctx context.Context, p product.Product) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("UpdateAsset"),
		p.ID, p.Object, encodePincodes(p.Pincodes), p.PhysicalOwner, p.VirtualOwner,
		p.AddressToShip, p.TrackingInfo, strconv.FormatBool(p.Sold)))
}

// TransferPhysicalProduct creates a transaction invoking
// `TransferPhysicalProduct` method of contract. Returns the previous physical
// owner.
func (c *Contract) TransferPhysicalProduct(ctx context.Context, id, newOwner string) (string, error) {
	return unwrap.String(c.actor.Submit(ctx, method("TransferPhysicalProduct"), id, newOwner))
}

// TransferVirtualProduct creates a transaction invoking
// `TransferVirtualProduct` method of contract. Returns the previous virtual
// owner.
func (c *Contract) TransferVirtualProduct(ctx context.Context, id, newOwner string) (string, error) {
	return unwrap.String(c.actor.Submit(ctx, method("TransferVirtualProduct"), id, newOwner))
}

// UpdateAddressToShip creates a transaction invoking `UpdateAddressToShip` method of contract.
func (c *Contract) UpdateAddressToShip(ctx context.Context, id, address string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("UpdateAddressToShip"), id, address))
}

// UpdateTrackingInfo creates a transaction invoking `UpdateTrackingInfo` method of contract.
func (c *Contract) UpdateTrackingInfo(ctx context.Context, id, info string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("UpdateTrackingInfo"), id, info))
}
