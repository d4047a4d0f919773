// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction so handlers do not depend on chi directly.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter (slug or occupation code) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
