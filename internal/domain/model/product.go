package model

import "time"

// Product is a catalog entry with live stock.
type Product struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Price         float64
	StockQuantity int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
