// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import "time"

// Wine represents a single catalog entry.
type Wine struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Variety     string    `json:"variety"`
	Country     *string   `json:"country,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter holds the optional parameters for a filtered catalog listing.
// Both filters combine with AND semantics.
type Filter struct {
	// Variety is matched as a case-sensitive substring against the variety field.
	Variety string

	// PriceOver keeps only wines priced strictly above the threshold.
	// Nil means no threshold (equivalent to > 0).
	PriceOver *float64
}

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldVariety     = "variety"
	FieldCountry     = "country"
)
