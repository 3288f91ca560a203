package asset

import (
	"github.com/tradeledger/asset-transfer/common"
	"github.com/tradeledger/asset-transfer/ledger"
)

// ContractName is the name the contract operations are registered under.
const ContractName = "AssetTransfer"

// used in error messages.
const kind = "asset"

var samples = []Asset{
	{ID: "asset1", Object: "Skateboard", Pincodes: []int{80796, 80797, 80799, 80801, 80803, 80804}, Owner: "Tomoko"},
	{ID: "asset2", Object: "Skateboard", Pincodes: []int{80801, 80805, 80807, 80809}, Owner: "Brad", ItemSold: true,
		ShippingAddress: "Franz-Joseph-Straße 45, 80801 München"},
	{ID: "asset3", Object: "Skateboard", Pincodes: []int{80798, 80799, 80801, 80803, 80807, 80809}, Owner: "Jin Soo"},
	{ID: "asset4", Object: "Laptop", Pincodes: []int{80796, 80797, 80807, 80809}, Owner: "Max"},
	{ID: "asset5", Object: "Laptop", Pincodes: []int{80803, 80807, 80809}, Owner: "Adriana"},
	{ID: "asset6", Object: "Laptop", Pincodes: []int{80796, 80797, 80798, 80799, 80801}, Owner: "Michel", ItemSold: true,
		ShippingAddress: "Franz-Joseph-Straße 45, 80801 München"},
}

// Methods returns all operations of the contract.
func Methods() []ledger.Method {
	return []ledger.Method{
		{Name: "InitLedger", Handler: initLedger},
		{Name: "CreateAsset", Handler: createAsset},
		{Name: "ReadAsset", Safe: true, Handler: readAsset},
		{Name: "UpdateAsset", Handler: updateAsset},
		{Name: "DeleteAsset", Handler: deleteAsset},
		{Name: "AssetExists", Safe: true, Handler: assetExists},
		{Name: "TransferAsset", Handler: transferAsset},
		{Name: "GetAllAssets", Safe: true, Handler: getAllAssets},
		{Name: "GetAllAssetsByObject", Safe: true, Handler: getAllAssetsByObject},
		{Name: "GetAssetAvailabilityByPincode", Safe: true, Handler: getAssetAvailabilityByPincode},
	}
}

// InitLedger writes the sample set of assets, overwriting existing ones.
func InitLedger(st ledger.Store) error {
	for i := range samples {
		a := samples[i]
		a.DocType = DocType

		if err := common.PutRecord(st, a.ID, a); err != nil {
			return err
		}
	}
	return nil
}

// Create issues a new unsold asset.
func Create(st ledger.Store, id, object string, pincodes []int, owner string) error {
	if err := common.MustNotExist(st, kind, id); err != nil {
		return err
	}

	return common.PutRecord(st, id, Asset{
		ID:       id,
		Object:   object,
		Pincodes: common.NonNilPincodes(pincodes),
		Owner:    owner,
	})
}

// Read returns the asset stored by id.
func Read(st ledger.Store, id string) (Asset, error) {
	var a Asset
	err := common.GetRecord(st, kind, id, &a)
	return a, err
}

// Update overwrites all fields of the existing asset. The asset is always
// marked as sold.
func Update(st ledger.Store, id, object string, pincodes []int, owner string) error {
	if err := common.MustExist(st, kind, id); err != nil {
		return err
	}

	// TODO: accept ItemSold from the caller once the sale status semantics of
	// UpdateAsset are settled with the product owners.
	return common.PutRecord(st, id, Asset{
		ID:       id,
		Object:   object,
		Pincodes: common.NonNilPincodes(pincodes),
		Owner:    owner,
		ItemSold: true,
	})
}

// Delete removes the asset.
func Delete(st ledger.Store, id string) error {
	if err := common.MustExist(st, kind, id); err != nil {
		return err
	}
	return st.DelState(id)
}

// Exists checks whether the asset is stored.
func Exists(st ledger.Store, id string) (bool, error) {
	return common.Exists(st, id)
}

// Transfer hands the asset over to the new owner shipping it to the given
// address, and returns the previous owner.
func Transfer(st ledger.Store, id, newOwner, shippingAddress string) (string, error) {
	a, err := Read(st, id)
	if err != nil {
		return "", err
	}

	old := a.Owner
	a.Owner = newOwner
	a.ShippingAddress = shippingAddress
	a.ItemSold = true

	if err = common.PutRecord(st, id, a); err != nil {
		return "", err
	}

	return old, nil
}

// GetAll returns all records of the world state in ascending key order.
func GetAll(st ledger.Store) ([]Entry, error) {
	return common.ScanRecords[Asset](st, validate)
}

// GetAllByObject returns unsold assets of the given object type in ascending
// key order.
func GetAllByObject(st ledger.Store, object string) ([]Asset, error) {
	all, err := GetAll(st)
	if err != nil {
		return nil, err
	}

	res := []Asset{}
	for i := range all {
		if a := all[i].Record; a != nil && a.Object == object && !a.ItemSold {
			res = append(res, *a)
		}
	}

	return res, nil
}

// AvailableAt checks whether the asset is served in the area with the given
// pincode.
func AvailableAt(st ledger.Store, id string, pincode int) (bool, error) {
	a, err := Read(st, id)
	if err != nil {
		return false, err
	}
	return a.AvailableAt(pincode), nil
}

func initLedger(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 0); err != nil {
		return nil, err
	}
	return nil, InitLedger(st)
}

func createAsset(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 4); err != nil {
		return nil, err
	}

	pincodes, err := common.ParsePincodes(args[2])
	if err != nil {
		return nil, err
	}

	return nil, Create(st, args[0], args[1], pincodes, args[3])
}

func readAsset(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}

	a, err := Read(st, args[0])
	if err != nil {
		return nil, err
	}

	return a, nil
}

func updateAsset(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 4); err != nil {
		return nil, err
	}

	pincodes, err := common.ParsePincodes(args[2])
	if err != nil {
		return nil, err
	}

	return nil, Update(st, args[0], args[1], pincodes, args[3])
}

func deleteAsset(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	return nil, Delete(st, args[0])
}

func assetExists(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	return Exists(st, args[0])
}

func transferAsset(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 3); err != nil {
		return nil, err
	}
	return Transfer(st, args[0], args[1], args[2])
}

func getAllAssets(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 0); err != nil {
		return nil, err
	}
	return GetAll(st)
}

func getAllAssetsByObject(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	return GetAllByObject(st, args[0])
}

func getAssetAvailabilityByPincode(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}

	pincode, err := common.ParsePincode(args[1])
	if err != nil {
		return nil, err
	}

	return AvailableAt(st, args[0], pincode)
}
