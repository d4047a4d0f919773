// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/katalog/internal/platform/apperr"
	"github.com/taibuivan/katalog/internal/platform/respond"
)

/*
TestHTML writes a fragment verbatim with the HTML content type.
*/
func TestHTML(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.HTML(recorder, `<div id="rod-managers"></div>`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `<div id="rod-managers"></div>`, recorder.Body.String())
}

/*
TestError_AppError maps an AppError to its status and envelope.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/skupine/nope", nil)

	respond.Error(recorder, request, apperr.NotFound("Rod"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Rod not found", body.Error)
}

/*
TestError_Unknown hides plain errors behind INTERNAL_ERROR.
*/
func TestError_Unknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("template exploded"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "template exploded")
}
