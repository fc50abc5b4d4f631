package v1

import "github.com/shopspring/decimal"

// ProductDetail is the product-service representation of a product.
// PriceUnit is decoded as an exact decimal; it accepts both JSON numbers and strings.
type ProductDetail struct {
	ProductID    int             `json:"productId"`
	ProductTitle string          `json:"productTitle,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	PriceUnit    decimal.Decimal `json:"priceUnit"`
	Quantity     int             `json:"quantity"`
}
