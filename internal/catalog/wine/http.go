// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/vinoteca/internal/platform/request"
	"github.com/taibuivan/vinoteca/internal/platform/respond"
	"github.com/taibuivan/vinoteca/internal/platform/validate"
	"github.com/taibuivan/vinoteca/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listWines)
	router.Post("/", handler.createWine)
	router.Get("/{id}", handler.getWine)
	router.Patch("/{id}", handler.updateDescription)
	router.Delete("/{id}", handler.deleteWine)
}

type createWineRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Variety     string  `json:"variety"`
	Country     *string `json:"country,omitempty"`
}

type updateDescriptionRequest struct {
	NewDescription string `json:"newDescription"`
}

func (handler *Handler) listWines(writer http.ResponseWriter, request *http.Request) {
	priceOver, ok := query.Float(request.URL.Query().Get("price"))
	if !ok {
		respond.Error(writer, request, validate.RequiredError(FieldPrice, "Must be a number"))
		return
	}

	filter := Filter{
		Variety:   query.Trimmed(request.URL.Query().Get("variety")),
		PriceOver: priceOver,
	}

	wines, err := handler.service.ListWines(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, wines)
}

func (handler *Handler) getWine(writer http.ResponseWriter, request *http.Request) {
	wine, err := handler.service.GetWine(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, wine)
}

func (handler *Handler) createWine(writer http.ResponseWriter, request *http.Request) {
	var input createWineRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	wine := &Wine{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Variety:     input.Variety,
		Country:     input.Country,
	}

	if err := handler.service.CreateWine(request.Context(), wine); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, wine)
}

func (handler *Handler) updateDescription(writer http.ResponseWriter, request *http.Request) {
	var input updateDescriptionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	wine, err := handler.service.UpdateDescription(request.Context(), requestutil.ID(request, "id"), input.NewDescription)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, wine)
}

// deleteWine returns the removed record's prior contents in the response body.
func (handler *Handler) deleteWine(writer http.ResponseWriter, request *http.Request) {
	wine, err := handler.service.DeleteWine(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, wine)
}
