package models

import (
	"time"
)

type Category string

const (
	CategoryRawSteel   Category = "Raw Steel"
	CategoryFabricated Category = "Fabricated"
)

// Product is an immutable catalog entry. Price is in whole rupees.
// MOQ and Increment define the valid order quantities
// {moq, moq+increment, moq+2*increment, ...}.
type Product struct {
	ID             string   `json:"id"                       yaml:"id"`
	Name           string   `json:"name"                     yaml:"name"`
	Description    string   `json:"description"              yaml:"description"`
	Price          int64    `json:"price"                    yaml:"price"`
	ImageURL       string   `json:"imageUrl"                 yaml:"imageUrl"`
	MOQ            int      `json:"moq"                      yaml:"moq"`
	Increment      int      `json:"increment"                yaml:"increment"`
	Category       Category `json:"category"                 yaml:"category"`
	Specifications string   `json:"specifications,omitempty" yaml:"specifications"`
	InStock        bool     `json:"inStock"                  yaml:"inStock"`
}

// CartItem is one product line in a cart. The embedded product fields
// are flattened into the persisted JSON blob alongside quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
}

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// CardDetails is a placeholder for the unimplemented online method.
// It is never persisted or forwarded anywhere.
type CardDetails struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

type PaymentInfo struct {
	Method      string       `json:"method"`
	CardDetails *CardDetails `json:"card_details,omitempty"`
}

// Order is synthesized once at successful placement and kept only in
// memory for the confirmation view.
type Order struct {
	OrderID           string       `json:"order_id"`
	Items             []CartItem   `json:"items"`
	Shipping          ShippingInfo `json:"shipping"`
	Payment           PaymentInfo  `json:"payment"`
	Subtotal          int64        `json:"subtotal"`
	ShippingCost      int64        `json:"shipping_cost"`
	Tax               int64        `json:"tax"`
	Total             int64        `json:"total"`
	CreatedAt         time.Time    `json:"created_at"`
	EstimatedDelivery string       `json:"estimated_delivery"`
}
