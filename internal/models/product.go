package models

// ProductCollection is the store collection holding products.
const ProductCollection = "product"

// Product represents an item in the Vistro catalog.
// The store-generated id is not part of the model; it is attached by the
// persistence layer when documents are read back.
type Product struct {
	Title       string           `json:"title" bson:"title" validate:"required"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64         `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string           `json:"category" bson:"category" validate:"required"`
	Images      []string         `json:"images" bson:"images" default:"[]"`
	Brand       string           `json:"brand" bson:"brand" default:"Vistro"`
	Tags        []string         `json:"tags" bson:"tags" default:"[]"`
	Variants    []ProductVariant `json:"variants" bson:"variants" validate:"dive" default:"[]"`
	Featured    bool             `json:"featured" bson:"featured"`
}

// ProductVariant is a size/color/stock combination of a product.
// SKU uniqueness across variants is not enforced.
type ProductVariant struct {
	Size  string `json:"size,omitempty" bson:"size,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
	SKU   string `json:"sku,omitempty" bson:"sku,omitempty"`
	Stock int    `json:"stock" bson:"stock" validate:"gte=0"`
}
