// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/vinoteca/internal/platform/constants"
	"github.com/taibuivan/vinoteca/internal/platform/respond"
)

// routeDescriptor documents a single endpoint in the GET / inventory.
type routeDescriptor struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requires_auth"`
}

// NewMetaHandler returns the GET / handler: a machine-readable description
// of the API surface, useful as a smoke test and for first-time explorers.
func NewMetaHandler() http.HandlerFunc {
	routes := []routeDescriptor{
		{Method: http.MethodGet, Path: "/health", Description: "Liveness probe"},
		{Method: http.MethodGet, Path: "/ready", Description: "Readiness probe with dependency checks"},
		{Method: http.MethodPost, Path: "/register", Description: "Create an account and mint its access token"},
		{Method: http.MethodPost, Path: "/login", Description: "Verify credentials and re-reveal the access token"},
		{Method: http.MethodGet, Path: "/wines", Description: "List wines, filterable by variety and price"},
		{Method: http.MethodPost, Path: "/wines", Description: "Add a wine to the catalog"},
		{Method: http.MethodGet, Path: "/wines/{id}", Description: "Fetch a single wine"},
		{Method: http.MethodPatch, Path: "/wines/{id}", Description: "Update a wine's description"},
		{Method: http.MethodDelete, Path: "/wines/{id}", Description: "Remove a wine from the catalog"},
		{Method: http.MethodGet, Path: "/secrets", Description: "List the caller's private notes", RequiresAuth: true},
		{Method: http.MethodPost, Path: "/secrets", Description: "Store a private note", RequiresAuth: true},
	}

	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]any{
			"name":    constants.AppName,
			"version": constants.AppVersion,
			"routes":  routes,
		})
	}
}
