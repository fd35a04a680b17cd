package models

import "fmt"

// SampleProducts returns the catalog inserted by the seed endpoint.
func SampleProducts() []Product {
	return []Product{
		{
			Title:       "Vistro Classic Tee",
			Description: "Soft cotton tee with minimalist Vistro logo.",
			Price:       price(28.0),
			Category:    "T-Shirts",
			Images:      []string{"https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200"},
			Brand:       "Vistro",
			Tags:        []string{"tee", "classic", "logo"},
			Variants:    sizeRun("Black", "VT-TEE-BLK", 50),
			Featured:    true,
		},
		{
			Title:       "Vistro Cozy Hoodie",
			Description: "Premium fleece hoodie built for comfort.",
			Price:       price(64.0),
			Category:    "Hoodies",
			Images:      []string{"https://images.unsplash.com/photo-1516826957135-700dedea698c?q=80&w=1200"},
			Brand:       "Vistro",
			Tags:        []string{"hoodie", "fleece", "cozy"},
			Variants:    sizeRun("Heather Gray", "VT-HDY-GRY", 30),
			Featured:    true,
		},
		{
			Title:       "Vistro Performance Joggers",
			Description: "Stretch joggers for all-day movement.",
			Price:       price(54.0),
			Category:    "Bottoms",
			Images:      []string{"https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1200"},
			Brand:       "Vistro",
			Tags:        []string{"joggers", "athleisure"},
			Variants:    sizeRun("Charcoal", "VT-JGR-CHR", 40),
			Featured:    false,
		},
	}
}

// sizeRun builds one variant per size S through XL with a shared color,
// SKU prefix and stock level.
func sizeRun(color, skuPrefix string, stock int) []ProductVariant {
	sizes := []string{"S", "M", "L", "XL"}
	variants := make([]ProductVariant, 0, len(sizes))
	for _, size := range sizes {
		variants = append(variants, ProductVariant{
			Size:  size,
			Color: color,
			SKU:   fmt.Sprintf("%s-%s", skuPrefix, size),
			Stock: stock,
		})
	}
	return variants
}

func price(v float64) *float64 {
	return &v
}
