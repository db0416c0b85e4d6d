package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thangamsteels/storefront/internal/models"
)

var ErrValidation = errors.New("validation")

// Catalog is a read-only set of sellable products, insertion-order
// preserved. Today the data is built in; a future backend replaces the
// file override.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

func New(products []models.Product) (*Catalog, error) {
	byID := make(map[string]models.Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: id required: %w", i, ErrValidation)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id: %w", p.ID, ErrValidation)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %q: name required: %w", p.ID, ErrValidation)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %q: price must be > 0: %w", p.ID, ErrValidation)
		}
		if p.MOQ <= 0 {
			return nil, fmt.Errorf("product %q: moq must be > 0: %w", p.ID, ErrValidation)
		}
		if p.Increment <= 0 {
			return nil, fmt.Errorf("product %q: increment must be > 0: %w", p.ID, ErrValidation)
		}
		if p.Category != models.CategoryRawSteel && p.Category != models.CategoryFabricated {
			return nil, fmt.Errorf("product %q: unknown category %q: %w", p.ID, p.Category, ErrValidation)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// LoadFile reads a product list from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var doc struct {
		Products []models.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog file has no products: %w", ErrValidation)
	}
	return New(doc.Products)
}

func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) ByCategory(cat models.Category) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
