package models

// OrderCollection is the store collection holding orders.
const OrderCollection = "order"

// CartItem is a single line of an order. ProductID must reference an
// existing product; size and color are free-form and not checked against
// the product's variant list.
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" bson:"quantity" validate:"min=1"`
	Size      string `json:"size,omitempty" bson:"size,omitempty"`
	Color     string `json:"color,omitempty" bson:"color,omitempty"`
}

// CustomerInfo holds the shipping details supplied with an order.
type CustomerInfo struct {
	Name       string `json:"name" bson:"name" validate:"required"`
	Email      string `json:"email" bson:"email" validate:"required,email"`
	Address    string `json:"address" bson:"address" validate:"required"`
	City       string `json:"city" bson:"city" validate:"required"`
	Country    string `json:"country" bson:"country" validate:"required"`
	PostalCode string `json:"postal_code" bson:"postal_code" validate:"required"`
}

// Order represents a placed order. The monetary fields are individually
// bounded at zero; total is not checked against subtotal + shipping.
type Order struct {
	Items    []CartItem   `json:"items" bson:"items" validate:"dive" default:"[]"`
	Subtotal *float64     `json:"subtotal" bson:"subtotal" validate:"required,gte=0"`
	Shipping *float64     `json:"shipping" bson:"shipping" validate:"required,gte=0"`
	Total    *float64     `json:"total" bson:"total" validate:"required,gte=0"`
	Currency string       `json:"currency" bson:"currency" default:"USD"`
	Status   string       `json:"status" bson:"status" default:"pending"`
	Customer CustomerInfo `json:"customer" bson:"customer"`
}
