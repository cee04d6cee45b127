// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package secret

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/vinoteca/internal/platform/request"
	"github.com/taibuivan/vinoteca/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the secret endpoints. The router passed here must
// already sit behind the authentication gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSecrets)
	router.Post("/", handler.createSecret)
}

type createSecretRequest struct {
	Message string `json:"message"`
}

func (handler *Handler) listSecrets(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	secrets, err := handler.service.ListSecrets(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, secrets)
}

func (handler *Handler) createSecret(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createSecretRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	secret, err := handler.service.CreateSecret(request.Context(), userID, input.Message)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, secret)
}
