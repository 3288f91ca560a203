/*
Package asset contains implementation of AssetTransfer contract: a registry of
items offered for sale in a set of service areas identified by pincodes.

Each asset is stored in the world state under its ID as canonical JSON (see
package canonical). Asset keeps a single owner; transferring an asset marks it
sold and records the shipping address.

# Operations

	InitLedger()
	CreateAsset(id, object, pincodes, owner)
	ReadAsset(id) -> asset
	UpdateAsset(id, object, pincodes, owner)
	DeleteAsset(id)
	AssetExists(id) -> bool
	TransferAsset(id, newOwner, shippingAddress) -> previous owner
	GetAllAssets() -> [asset | raw string]
	GetAllAssetsByObject(object) -> [asset]
	GetAssetAvailabilityByPincode(id, pincode) -> bool

pincodes argument is a JSON array of integers, pincode is a decimal integer.

UpdateAsset always marks the asset as sold and resets its shipping address,
whatever the previous state was.

GetAllAssets scans the whole keyspace. Values that are not valid assets are
returned as raw strings instead of failing the query.
*/
package asset
