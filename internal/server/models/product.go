package models

import "time"

// Product is a catalog entry.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}
