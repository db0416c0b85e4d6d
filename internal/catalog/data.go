package catalog

import (
	"github.com/thangamsteels/storefront/internal/models"
)

// Builtin returns the stock catalog: 4 raw steel and 4 fabricated
// products. Prices are per unit in rupees.
func Builtin() *Catalog {
	c, err := New(builtinProducts)
	if err != nil {
		// The built-in data is validated by tests; failing here means
		// the binary itself is broken.
		panic(err)
	}
	return c
}

var builtinProducts = []models.Product{
	{
		ID:             "tmt-bars-8mm",
		Name:           "TMT Bars 8mm",
		Description:    "High-strength TMT bars with superior corrosion resistance and earthquake resistance properties.",
		Price:          380,
		ImageURL:       "products/tmt-bars.png",
		MOQ:            10,
		Increment:      5,
		Category:       models.CategoryRawSteel,
		Specifications: "8mm diameter, Fe500 grade",
		InStock:        true,
	},
	{
		ID:             "steel-pipes-round",
		Name:           "Round Steel Pipes",
		Description:    "Premium quality round mild steel pipes suitable for construction and industrial applications.",
		Price:          149,
		ImageURL:       "products/steel-pipes.png",
		MOQ:            10,
		Increment:      5,
		Category:       models.CategoryRawSteel,
		Specifications: "Various sizes available",
		InStock:        true,
	},
	{
		ID:             "steel-sheets",
		Name:           "Steel Sheets & Coils",
		Description:    "High-grade steel sheets and coils with excellent formability and surface finish.",
		Price:          66,
		ImageURL:       "products/steel-sheets-coils.png",
		MOQ:            10,
		Increment:      5,
		Category:       models.CategoryRawSteel,
		Specifications: "Multiple gauges available",
		InStock:        true,
	},
	{
		ID:             "steel-rods",
		Name:           "Steel Rods",
		Description:    "Solid steel rods manufactured to precise specifications for various industrial applications.",
		Price:          75,
		ImageURL:       "products/steel-rods.png",
		MOQ:            10,
		Increment:      5,
		Category:       models.CategoryRawSteel,
		Specifications: "6mm - 25mm diameter",
		InStock:        true,
	},
	{
		ID:             "industrial-racks",
		Name:           "Industrial Storage Racks",
		Description:    "Heavy-duty industrial storage racks designed for maximum load capacity and durability.",
		Price:          15000,
		ImageURL:       "products/industrial-racks.png",
		MOQ:            3,
		Increment:      1,
		Category:       models.CategoryFabricated,
		Specifications: "Custom sizes available",
		InStock:        true,
	},
	{
		ID:             "steel-lockers-18door",
		Name:           "18-Door Steel Lockers",
		Description:    "Robust 18-door steel lockers perfect for offices, factories, and institutional use.",
		Price:          18000,
		ImageURL:       "products/steel-locker.png",
		MOQ:            3,
		Increment:      1,
		Category:       models.CategoryFabricated,
		Specifications: "18 individual compartments",
		InStock:        true,
	},
	{
		ID:             "steel-furniture",
		Name:           "Commercial Steel Furniture",
		Description:    "Durable steel tables, chairs, and dining sets designed for commercial and institutional use.",
		Price:          19000,
		ImageURL:       "products/steel-furniture.png",
		MOQ:            3,
		Increment:      1,
		Category:       models.CategoryFabricated,
		Specifications: "Various designs available",
		InStock:        true,
	},
	{
		ID:             "steel-beds",
		Name:           "Steel Beds",
		Description:    "Foldable and fixed steel beds with superior strength and comfort for institutional use.",
		Price:          3000,
		ImageURL:       "products/steel-beds.png",
		MOQ:            5,
		Increment:      1,
		Category:       models.CategoryFabricated,
		Specifications: "Foldable and fixed options",
		InStock:        true,
	},
}
