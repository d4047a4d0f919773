// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/katalog/internal/platform/apperr"
)

/*
TestNotFound verifies the message and status of resource lookups.
*/
func TestNotFound(t *testing.T) {
	err := apperr.NotFound("Skupina")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Skupina not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

/*
TestAs_Wrapped checks that AppErrors survive fmt.Errorf wrapping.
*/
func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", apperr.NotFound("Rod"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestInternal_HidesCause ensures the client message never leaks the cause.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}
