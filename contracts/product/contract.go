package product

import (
	"github.com/tradeledger/asset-transfer/common"
	"github.com/tradeledger/asset-transfer/ledger"
)

// ContractName is the name the contract operations are registered under.
const ContractName = "ProductTransfer"

const kind = "product"

var samples = []Product{
	{ID: "product1", Object: "Skateboard", Pincodes: []int{80796, 80797, 80798, 80799, 80801, 80803, 80804}, PhysicalOwner: "Tomoko"},
	{ID: "product2", Object: "Skateboard", Pincodes: []int{80804, 80805, 80807, 80809}, PhysicalOwner: "Brad"},
	{ID: "product3", Object: "Laptop", Pincodes: []int{80798, 80799, 80801, 80803, 80807, 80809}, PhysicalOwner: "Jin Soo"},
	{ID: "product4", Object: "Laptop", Pincodes: []int{80796, 80797, 80807, 80809}, PhysicalOwner: "Max"},
	{ID: "product5", Object: "Monopoly", Pincodes: []int{80803, 80807, 80809}, PhysicalOwner: "Adriana"},
	{ID: "product6", Object: "Monopoly", Pincodes: []int{80796, 80797, 80798, 80799, 80801}, PhysicalOwner: "Michel"},
}

// Methods returns all operations of the contract.
func Methods() []ledger.Method {
	return []ledger.Method{
		{Name: "InitLedger", Handler: initLedger},
		{Name: "CreateProduct", Handler: createProduct},
		{Name: "ReadProduct", Safe: true, Handler: readProduct},
		{Name: "UpdateAsset", Handler: updateProduct},
		{Name: "ProductExists", Safe: true, Handler: productExists},
		{Name: "TransferPhysicalProduct", Handler: transferPhysical},
		{Name: "TransferVirtualProduct", Handler: transferVirtual},
		{Name: "GetAllProducts", Safe: true, Handler: getAllProducts},
		{Name: "GetAllProductsByObjectType", Safe: true, Handler: getAllProductsByObjectType},
		{Name: "GetProductAvailabilityByPincode", Safe: true, Handler: getProductAvailabilityByPincode},
		{Name: "UpdateAddressToShip", Handler: updateAddressToShip},
		{Name: "UpdateTrackingInfo", Handler: updateTrackingInfo},
	}
}

// InitLedger writes the sample set of products, overwriting existing ones.
// Both owners of each sample are the same.
func InitLedger(st ledger.Store) error {
	for i := range samples {
		p := samples[i]
		p.VirtualOwner = p.PhysicalOwner

		if err := common.PutRecord(st, p.ID, p); err != nil {
			return err
		}
	}
	return nil
}

// Create issues a new unsold product held and owned by owner.
func Create(st ledger.Store, id, object string, pincodes []int, owner string) error {
	if err := common.MustNotExist(st, kind, id); err != nil {
		return err
	}

	return common.PutRecord(st, id, Product{
		ID:            id,
		Object:        object,
		Pincodes:      common.NonNilPincodes(pincodes),
		PhysicalOwner: owner,
		VirtualOwner:  owner,
	})
}

// Read returns the product stored by id.
func Read(st ledger.Store, id string) (Product, error) {
	var p Product
	err := common.GetRecord(st, kind, id, &p)
	return p, err
}

// Update overwrites all fields of the existing product with p. p.ID selects
// the product.
func Update(st ledger.Store, p Product) error {
	if err := common.MustExist(st, kind, p.ID); err != nil {
		return err
	}

	p.Pincodes = common.NonNilPincodes(p.Pincodes)

	return common.PutRecord(st, p.ID, p)
}

// Exists checks whether the product is stored.
func Exists(st ledger.Store, id string) (bool, error) {
	return common.Exists(st, id)
}

// modify applies f to the stored product and writes the result back.
func modify(st ledger.Store, id string, f func(*Product)) error {
	p, err := Read(st, id)
	if err != nil {
		return err
	}

	f(&p)

	return common.PutRecord(st, id, p)
}

// TransferPhysical hands the product over to the new holder and returns the
// previous one. Virtual owner is not changed.
func TransferPhysical(st ledger.Store, id, newOwner string) (string, error) {
	var old string

	err := modify(st, id, func(p *Product) {
		old, p.PhysicalOwner = p.PhysicalOwner, newOwner
	})

	return old, err
}

// TransferVirtual passes the title to the product to the new owner and
// returns the previous one. Physical owner is not changed.
func TransferVirtual(st ledger.Store, id, newOwner string) (string, error) {
	var old string

	err := modify(st, id, func(p *Product) {
		old, p.VirtualOwner = p.VirtualOwner, newOwner
	})

	return old, err
}

// SetAddressToShip sets the delivery address of the product.
func SetAddressToShip(st ledger.Store, id, address string) error {
	return modify(st, id, func(p *Product) {
		p.AddressToShip = address
	})
}

// SetTrackingInfo sets the shipment tracking information of the product.
func SetTrackingInfo(st ledger.Store, id, info string) error {
	return modify(st, id, func(p *Product) {
		p.TrackingInfo = info
	})
}

// GetAll returns all records of the world state in ascending key order.
func GetAll(st ledger.Store) ([]Entry, error) {
	return common.ScanRecords[Product](st, validate)
}

// GetAllByObjectType returns products of the given object type in ascending
// key order.
func GetAllByObjectType(st ledger.Store, object string) ([]Product, error) {
	all, err := GetAll(st)
	if err != nil {
		return nil, err
	}

	res := []Product{}
	for i := range all {
		if p := all[i].Record; p != nil && p.Object == object {
			res = append(res, *p)
		}
	}

	return res, nil
}

// AvailableAt checks whether the product is served in the area with the
// given pincode.
func AvailableAt(st ledger.Store, id string, pincode int) (bool, error) {
	p, err := Read(st, id)
	if err != nil {
		return false, err
	}
	return p.AvailableAt(pincode), nil
}

func initLedger(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 0); err != nil {
		return nil, err
	}
	return nil, InitLedger(st)
}

func createProduct(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 4); err != nil {
		return nil, err
	}

	pincodes, err := common.ParsePincodes(args[2])
	if err != nil {
		return nil, err
	}

	return nil, Create(st, args[0], args[1], pincodes, args[3])
}

func readProduct(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}

	p, err := Read(st, args[0])
	if err != nil {
		return nil, err
	}

	return p, nil
}

func updateProduct(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 8); err != nil {
		return nil, err
	}

	pincodes, err := common.ParsePincodes(args[2])
	if err != nil {
		return nil, err
	}

	sold, err := common.ParseBool(args[7])
	if err != nil {
		return nil, err
	}

	return nil, Update(st, Product{
		ID:            args[0],
		Object:        args[1],
		Pincodes:      pincodes,
		PhysicalOwner: args[3],
		VirtualOwner:  args[4],
		AddressToShip: args[5],
		TrackingInfo:  args[6],
		Sold:          sold,
	})
}

func productExists(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	return Exists(st, args[0])
}

func transferPhysical(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}
	return TransferPhysical(st, args[0], args[1])
}

func transferVirtual(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}
	return TransferVirtual(st, args[0], args[1])
}

func getAllProducts(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 0); err != nil {
		return nil, err
	}
	return GetAll(st)
}

func getAllProductsByObjectType(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 1); err != nil {
		return nil, err
	}
	return GetAllByObjectType(st, args[0])
}

func getProductAvailabilityByPincode(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}

	pincode, err := common.ParsePincode(args[1])
	if err != nil {
		return nil, err
	}

	return AvailableAt(st, args[0], pincode)
}

func updateAddressToShip(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}
	return nil, SetAddressToShip(st, args[0], args[1])
}

func updateTrackingInfo(st ledger.Store, args []string) (any, error) {
	if err := common.CheckArgs(args, 2); err != nil {
		return nil, err
	}
	return nil, SetTrackingInfo(st, args[0], args[1])
}
