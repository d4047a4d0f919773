// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/katalog/internal/core/catalogue"
	"github.com/taibuivan/katalog/internal/platform/constants"
)

func serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := catalogue.NewHandler(newFixtureService(t))

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

/*
TestHandler_Fragments maps every route to its node kind and state.
*/
func TestHandler_Fragments(t *testing.T) {
	tests := []struct {
		name   string
		target string
		action string
	}{
		{"expand_rod", "/skupine/managers", `hx-get="/sakrij-rod/managers"`},
		{"collapse_rod", "/sakrij-rod/managers", `hx-get="/skupine/managers"`},
		{"expand_skupina", "/zanimanja/managing-directors", `hx-get="/sakrij-skupinu/managing-directors"`},
		{"collapse_skupina", "/sakrij-skupinu/managing-directors", `hx-get="/zanimanja/managing-directors"`},
		{"show_occupation", "/opis/1110", `hx-get="/sakrij-opis/1110"`},
		{"hide_occupation", "/sakrij-opis/1110", `hx-get="/opis/1110"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, constants.ContentTypeHTML, recorder.Header().Get(constants.HeaderContentType))
			assert.Contains(t, recorder.Body.String(), tt.action)
		})
	}
}

/*
TestHandler_Fragments_NotFound answers unknown identifiers with a JSON 404.
*/
func TestHandler_Fragments_NotFound(t *testing.T) {
	for _, target := range []string{"/skupine/nope", "/sakrij-skupinu/nope", "/opis/0000"} {
		t.Run(target, func(t *testing.T) {
			recorder := serve(t, http.MethodGet, target)

			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.Equal(t, constants.ContentTypeJSON, recorder.Header().Get(constants.HeaderContentType))
			assert.NotContains(t, recorder.Body.String(), "hx-get")

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "NOT_FOUND", body["code"])
		})
	}
}

/*
TestHandler_Page serves the landing document.
*/
func TestHandler_Page(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `id="rod-managers"`)
	assert.Contains(t, recorder.Body.String(), `id="rod-strucnjaci"`)
}

/*
TestHandler_Overview returns the rod tree in the success envelope.
*/
func TestHandler_Overview(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/api/v1/catalogue")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []catalogue.RodView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)

	assert.Equal(t, "managers", body.Data[0].Slug)
	assert.Equal(t, []catalogue.SkupinaView{
		{Label: "Legislators and senior officials", Slug: "legislators-and-senior-officials"},
		{Label: "Managing directors", Slug: "managing-directors"},
	}, body.Data[0].Skupine)
}

/*
TestHandler_Occupation returns one record or a 404.
*/
func TestHandler_Occupation(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/api/v1/occupations/1110")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data catalogue.Occupation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Legislator", body.Data.Name)
	assert.Equal(t, "Managers", body.Data.Rod)

	assert.Equal(t, http.StatusNotFound, serve(t, http.MethodGet, "/api/v1/occupations/0000").Code)
}

/*
TestHandler_Occupation_InvalidCode answers 400 with the failing field.
*/
func TestHandler_Occupation_InvalidCode(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/api/v1/occupations/11%2010")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "code", body.Details[0].Field)
}

/*
TestHandler_MethodNotAllowed only serves reads.
*/
func TestHandler_MethodNotAllowed(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, http.MethodPost, "/skupine/managers").Code)
}
