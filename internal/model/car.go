package model

import "github.com/shopspring/decimal"

// Car is a read-only catalogue entry returned by the recommendation
// endpoint.  Prices are decimals so rupiah amounts never pass through
// floating point.
type Car struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	ImageURL     string          `json:"image_url"`
	Transmission string          `json:"transmission"`
	Capacity     int             `json:"capacity"`
	Status       string          `json:"status"`
	Popularity   int             `json:"popularity"`
	Year         int             `json:"year"`
	WithDriver   bool            `json:"with_driver"`
}

// Available reports whether the backend marked the car as rentable.
func (c Car) Available() bool {
	switch c.Status {
	case "available", "tersedia", "":
		return true
	}
	return false
}
