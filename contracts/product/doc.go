/*
Package product contains implementation of ProductTransfer contract. Product
ownership has two independent axes: the physical owner holds the item, the
virtual owner holds the title to it. Each axis is transferred separately.

Products are stored under their IDs as canonical JSON, in the same keyspace
as the records of other contracts deployed together with it.

# Operations

	InitLedger()
	CreateProduct(id, object, pincodes, owner)
	ReadProduct(id) -> product
	UpdateAsset(id, object, pincodes, physicalOwner, virtualOwner, addressToShip, trackingInfo, sold)
	ProductExists(id) -> bool
	TransferPhysicalProduct(id, newPhysicalOwner) -> previous physical owner
	TransferVirtualProduct(id, newVirtualOwner) -> previous virtual owner
	GetAllProducts() -> [product | raw string]
	GetAllProductsByObjectType(object) -> [product]
	GetProductAvailabilityByPincode(id, pincode) -> bool
	UpdateAddressToShip(id, addressToShip)
	UpdateTrackingInfo(id, trackingInfo)

UpdateAsset keeps its historical name although it updates products. Products
can not be deleted.
*/
package product
