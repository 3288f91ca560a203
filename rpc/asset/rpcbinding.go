// Package asset contains typed wrappers for AssetTransfer contract.
package asset

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/tradeledger/asset-transfer/contracts"
	"github.com/tradeledger/asset-transfer/contracts/asset"
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
	return asset.ContractName + contracts.Separator + name
}

func encodePincodes(pincodes []int) string {
	if pincodes == nil {
		pincodes = []int{}
	}
	b, _ := json.Marshal(pincodes)
	return string(b)
}

// ReadAsset invokes `ReadAsset` method of contract.
func (c *ContractReader) ReadAsset(ctx context.Context, id string) (asset.Asset, error) {
	return unwrap.JSON[asset.Asset](c.invoker.Call(ctx, method("ReadAsset"), id))
}

// AssetExists invokes `AssetExists` method of contract.
func (c *ContractReader) AssetExists(ctx context.Context, id string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(ctx, method("AssetExists"), id))
}

// GetAllAssets invokes `GetAllAssets` method of contract.
func (c *ContractReader) GetAllAssets(ctx context.Context) ([]asset.Entry, error) {
	return unwrap.Entries[asset.Asset](c.invoker.Call(ctx, method("GetAllAssets")))
}

// GetAllAssetsByObject invokes `GetAllAssetsByObject` method of contract.
func (c *ContractReader) GetAllAssetsByObject(ctx context.Context, object string) ([]asset.Asset, error) {
	return unwrap.JSON[[]asset.Asset](c.invoker.Call(ctx, method("GetAllAssetsByObject"), object))
}

// GetAssetAvailabilityByPincode invokes `GetAssetAvailabilityByPincode` method of contract.
func (c *ContractReader) GetAssetAvailabilityByPincode(ctx context.Context, id string, pincode int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(ctx, method("GetAssetAvailabilityByPincode"), id, strconv.Itoa(pincode)))
}

// InitLedger creates a transaction invoking `InitLedger` method of contract.
func (c *Contract) InitLedger(ctx context.Context) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("InitLedger")))
}

// CreateAsset creates a transaction invoking `CreateAsset` method of contract.
func (c *Contract) CreateAsset(ctx context.Context, id, object string, pincodes []int, owner string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("CreateAsset"), id, object, encodePincodes(pincodes), owner))
}

// UpdateAsset creates a transaction invoking `UpdateAsset` method of contract.
func (c *Contract) UpdateAsset(ctx context.Context, id, object string, pincodes []int, owner string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("UpdateAsset"), id, object, encodePincodes(pincodes), owner))
}

// DeleteAsset creates a transaction invoking `DeleteAsset` method of contract.
func (c *Contract) DeleteAsset(ctx context.Context, id string) error {
	return unwrap.Nothing(c.actor.Submit(ctx, method("DeleteAsset"), id))
}

// TransferAsset creates a transaction invoking `TransferAsset` method of
// contract. Returns the previous owner.
func (c *Contract) TransferAsset(ctx context.Context, id, newOwner, shippingAddress string) (string, error) {
	return unwrap.String(c.actor.Submit(ctx, method("TransferAsset"), id, newOwner, shippingAddress))
}
