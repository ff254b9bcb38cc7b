package entities

// CatalogSnapshot is the pricing/metadata view of a catalog item at a point
// in time, used to build line-item snapshots at quotation creation.
type CatalogSnapshot struct {
	ItemRef   string  `json:"item_ref"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}
