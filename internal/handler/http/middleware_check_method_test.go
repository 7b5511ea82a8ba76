// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered method", http.MethodGet, "/items", http.StatusOK},
		{"unregistered method", http.MethodDelete, "/items", http.StatusNotFound},
		{"parameterised route", http.MethodPost, "/items/7", http.StatusCreated},
		{"unregistered method on parameterised route", http.MethodGet, "/items/7", http.StatusNotFound},
	}

	router := newMethodRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_JSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newMethodRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/items", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}
