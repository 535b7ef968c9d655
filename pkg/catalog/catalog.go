// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"
)

func LoadCatalog(path string) (*ProductCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat ProductCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

// FilesFor returns the downloadable files for a product name. Unknown
// products resolve to an empty list, not an error.
func (c *ProductCatalog) FilesFor(productName string) []ProductFile {
	for _, p := range c.Products {
		if p.Name == productName {
			return p.Files
		}
	}
	return nil
}
