package models

// MilkType enumerates the two milk sources handled by the dairy.
type MilkType string

const (
	MilkCow     MilkType = "cow"
	MilkBuffalo MilkType = "buffalo"
)

// CollectionTime enumerates the two daily collection slots.
type CollectionTime string

const (
	CollectionMorning CollectionTime = "morning"
	CollectionNight   CollectionTime = "night"
)

// PaymentStatus enumerates sale payment states.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// StockStatus is derived at read time from the stock quantity.
type StockStatus string

const (
	StockNormal StockStatus = "normal"
	StockLow    StockStatus = "low"
)

// Numeric fields below are strings on the wire: the backend stores form
// input verbatim. Parsing them leniently is the analytics layer's concern.

// MilkCollection is one recorded milk intake for a calendar day.
type MilkCollection struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	CollectionTime string `json:"collection_time"`
	QuantityLtr    string `json:"quantity_ltr"`
	CostPerLitre   string `json:"cost_per_litre"`
	MilkType       string `json:"milk_type"`
	Fat            string `json:"fat"`
	SNF            string `json:"snf"`
}

// RawMaterialUsage records one raw material consumed while producing an item.
type RawMaterialUsage struct {
	RawMaterialID string `json:"raw_material_id"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	QuantityUsed  string `json:"quantity_used"`
}

// ProductionItem is one product manufactured within a batch.
type ProductionItem struct {
	ProductID    string             `json:"product_id"`
	ProductName  string             `json:"product_name"`
	Quantity     string             `json:"quantity"`
	RawMaterials []RawMaterialUsage `json:"raw_materials"`
}

// Production is one production batch converting milk into finished products.
// MilkUsedLtr is maintained by the entry form as the sum of the two milk
// splits; the backend does not enforce it.
type Production struct {
	ID               string           `json:"id"`
	BatchNo          string           `json:"batch_no"`
	Date             string           `json:"date"`
	SeprationMilkLtr string           `json:"sepration_milk_ltr"`
	WholeMilkLtr     string           `json:"whole_milk_ltr"`
	MilkUsedLtr      string           `json:"milk_used_ltr"`
	Products         []ProductionItem `json:"products"`
}

// Sale is one sales transaction. Total is client-computed as quantity x rate.
type Sale struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Customer      string `json:"customer"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name,omitempty"`
	Quantity      string `json:"quantity"`
	Rate          string `json:"rate"`
	Total         string `json:"total"`
	PaymentStatus string `json:"payment_status"`
}

// RawMaterial is a catalog entry for a product's ingredient.
type RawMaterial struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Product is a catalog entity, not a time series.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Unit         string        `json:"unit"`
	RawMaterials []RawMaterial `json:"raw_materials"`
}

// Stock is the backend's raw stock level for a product.
type Stock struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	Quantity    string `json:"quantity"`
	LastUpdated string `json:"last_updated"`
}

// EnrichedStock is a Stock joined against the product catalog at read time,
// with the low/normal status derived from the quantity.
type EnrichedStock struct {
	Stock
	ProductName string      `json:"product_name"`
	Unit        string      `json:"unit"`
	Status      StockStatus `json:"status"`
}
