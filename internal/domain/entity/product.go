package entity

import (
	"strconv"
	"time"
)

// Product is a catalog item. Products are created and maintained in the
// external store; this service only ever reads them.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Price       float64   `json:"price" firestore:"price"`
	Image       string    `json:"image" firestore:"image"`
	Brand       string    `json:"brand" firestore:"brand"`
	Stock       int       `json:"stock" firestore:"stock"`
	Type        string    `json:"type" firestore:"type"`
	ConsoleLine string    `json:"console_line,omitempty" firestore:"consoleLine,omitempty"`
	Condition   string    `json:"condition" firestore:"condition"`
	Location    string    `json:"location" firestore:"location"`
	Rating      float64   `json:"rating" firestore:"rating"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Category    string    `json:"category,omitempty" firestore:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
}

// NormalizeProduct substitutes safe defaults for absent or malformed
// fields. It is applied exactly once, at ingestion; consumers can rely
// on every field holding a usable value afterwards.
func NormalizeProduct(id string, raw map[string]interface{}) *Product {
	p := &Product{
		ID:          id,
		Name:        stringField(raw, "name", "No Name"),
		Price:       numberField(raw, "price"),
		Image:       stringField(raw, "image", ""),
		Brand:       stringField(raw, "brand", "Unknown Brand"),
		Stock:       intField(raw, "stock"),
		Type:        stringField(raw, "type", "uncategorized"),
		ConsoleLine: stringField(raw, "consoleLine", ""),
		Condition:   stringField(raw, "condition", "New"),
		Location:    stringField(raw, "location", "Unknown Location"),
		Rating:      numberField(raw, "rating"),
		Description: stringField(raw, "description", ""),
		Category:    stringField(raw, "category", ""),
	}

	if t, ok := raw["createdAt"].(time.Time); ok {
		p.CreatedAt = t
	}

	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}

	return p
}

func stringField(raw map[string]interface{}, key, fallback string) string {
	if v, ok := raw[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func numberField(raw map[string]interface{}, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// Some store documents carry stock as a string, some as a number.
func intField(raw map[string]interface{}, key string) int {
	switch v := raw[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
