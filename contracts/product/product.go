package product

import (
	"errors"
	"slices"

	"github.com/tradeledger/asset-transfer/common"
)

// Product is a record of ProductTransfer contract.
type Product struct {
	ID            string `json:"ID"`
	Object        string `json:"Object"`
	Pincodes      []int  `json:"Pincodes"`
	PhysicalOwner string `json:"PhysicalOwner"`
	VirtualOwner  string `json:"VirtualOwner"`
	AddressToShip string `json:"AddressToShip"`
	TrackingInfo  string `json:"TrackingInfo"`
	Sold          bool   `json:"Sold"`
}

// Entry is an item of GetAllProducts result.
type Entry = common.Entry[Product]

// AvailableAt checks whether the product is served in the area with the
// given pincode.
func (x Product) AvailableAt(pincode int) bool {
	return slices.Contains(x.Pincodes, pincode)
}

func validate(p *Product) error {
	if p.ID == "" {
		return errors.New("missing product ID")
	}
	return nil
}
