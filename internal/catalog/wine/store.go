// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import "context"

type Repository interface {
	ListWines(context context.Context, f Filter) ([]*Wine, error)
	GetWine(context context.Context, id string) (*Wine, error)
	FindByName(context context.Context, name string) (*Wine, error)
	CreateWine(context context.Context, w *Wine) error
	UpdateDescription(context context.Context, id, description string) (*Wine, error)
	DeleteWine(context context.Context, id string) (*Wine, error)
	Truncate(context context.Context) error
}
