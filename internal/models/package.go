package models

// Package is a purchasable travel package. Prices are whole INR; the gateway
// layer converts to paise.
type Package struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}
