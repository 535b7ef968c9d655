// pkg/catalog/schema.go
package catalog

// ProductCatalog maps sellable digital products to their stored files.
type ProductCatalog struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated"`
	Products    []Product `json:"products"`
}

type Product struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName,omitempty"`
	Description string        `json:"description,omitempty"`
	Files       []ProductFile `json:"files"`
}

// ProductFile is one downloadable object belonging to a product.
type ProductFile struct {
	Filename string `json:"filename"`
	Key      string `json:"key"` // object key in the products bucket
}
