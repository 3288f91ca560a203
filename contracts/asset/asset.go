package asset

import (
	"errors"
	"slices"

	"github.com/tradeledger/asset-transfer/common"
)

// DocType is the document type tag of the assets issued by InitLedger.
const DocType = "asset"

// Asset is a record of AssetTransfer contract.
type Asset struct {
	DocType         string `json:"docType,omitempty"`
	ID              string `json:"ID"`
	Object          string `json:"Object"`
	Pincodes        []int  `json:"Pincodes"`
	Owner           string `json:"Owner"`
	ItemSold        bool   `json:"ItemSold"`
	ShippingAddress string `json:"ShippingAddress"`
}

// Entry is an item of GetAllAssets result.
type Entry = common.Entry[Asset]

// AvailableAt checks whether the asset is served in the area with the given
// pincode.
func (x Asset) AvailableAt(pincode int) bool {
	return slices.Contains(x.Pincodes, pincode)
}

func validate(a *Asset) error {
	if a.ID == "" {
		return errors.New("missing asset ID")
	}
	return nil
}
