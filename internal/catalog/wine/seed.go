// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import "github.com/taibuivan/vinoteca/pkg/pointer"

// DefaultCatalog returns the seed set inserted by [Service.ResetCatalog].
// Returned fresh on every call so callers can mutate entries safely.
func DefaultCatalog() []*Wine {
	return []*Wine{
		{
			Name:        "Château Margaux 2015",
			Description: "A structured left-bank Bordeaux with dark fruit and graphite.",
			Price:       890,
			Variety:     "cabernet sauvignon",
			Country:     pointer.To("France"),
		},
		{
			Name:        "Cloudy Bay Sauvignon Blanc",
			Description: "Crisp Marlborough white with gooseberry and citrus zest.",
			Price:       32.5,
			Variety:     "sauvignon blanc",
			Country:     pointer.To("New Zealand"),
		},
		{
			Name:        "Catena Zapata Malbec",
			Description: "High-altitude Mendoza red, plush plum and violet aromatics.",
			Price:       45,
			Variety:     "malbec",
			Country:     pointer.To("Argentina"),
		},
		{
			Name:        "Dr. Loosen Riesling Kabinett",
			Description: "Off-dry Mosel riesling, slate minerality and green apple.",
			Price:       24,
			Variety:     "riesling",
			Country:     pointer.To("Germany"),
		},
		{
			Name:        "Billecart-Salmon Brut Rosé",
			Description: "Elegant rosé champagne with red berries and fine mousse.",
			Price:       110,
			Variety:     "pinot noir blend",
			Country:     pointer.To("France"),
		},
	}
}
