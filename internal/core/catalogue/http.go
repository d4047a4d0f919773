// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/katalog/internal/platform/request"
	"github.com/taibuivan/katalog/internal/platform/respond"
)

// Route prefixes of the fragment protocol. Each fragment embeds the prefix
// of its opposite state; the templates spell them out literally.
const (
	PathExpandRod       = "/skupine/"
	PathCollapseRod     = "/sakrij-rod/"
	PathExpandSkupina   = "/zanimanja/"
	PathCollapseSkupina = "/sakrij-skupinu/"
	PathShowOccupation  = "/opis/"
	PathHideOccupation  = "/sakrij-opis/"
)

// Handler implements the HTTP layer of the catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the page, fragment and read API endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Landing Page
	router.Get("/", handler.page)

	// # Fragments
	router.Get(PathExpandRod+"{slug}", handler.fragment(KindRod, StateExpanded, "slug"))
	router.Get(PathCollapseRod+"{slug}", handler.fragment(KindRod, StateCollapsed, "slug"))
	router.Get(PathExpandSkupina+"{slug}", handler.fragment(KindSkupina, StateExpanded, "slug"))
	router.Get(PathCollapseSkupina+"{slug}", handler.fragment(KindSkupina, StateCollapsed, "slug"))
	router.Get(PathShowOccupation+"{code}", handler.fragment(KindOccupation, StateExpanded, "code"))
	router.Get(PathHideOccupation+"{code}", handler.fragment(KindOccupation, StateCollapsed, "code"))

	// # Read API
	router.Route("/api/v1", func(api chi.Router) {
		api.Get("/catalogue", handler.overview)
		api.Get("/occupations/{code}", handler.occupation)
	})

	return router
}

/*
GET /.

Description: Renders the landing page listing every rod in its collapsed state.

Response:
  - 200: text/html
*/
func (handler *Handler) page(writer http.ResponseWriter, request *http.Request) {
	html, err := handler.service.Page(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.HTML(writer, html)
}

/*
GET /skupine/{slug}, /sakrij-rod/{slug}, /zanimanja/{slug},
/sakrij-skupinu/{slug}, /opis/{code}, /sakrij-opis/{code}.

Description: Returns one node's fragment in the state bound to the route.

Request:
  - slug: string (rod or skupina slug) | code: string (occupation code)

Response:
  - 200: text/html fragment
  - 404: NOT_FOUND: Identifier does not resolve
*/
func (handler *Handler) fragment(kind Kind, state State, param string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id := requestutil.Param(request, param)

		fragment, err := handler.service.Fragment(request.Context(), kind, id, state)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.HTML(writer, fragment)
	}
}

/*
GET /api/v1/catalogue.

Description: Returns every rod with its slug and sorted skupine.

Response:
  - 200: []RodView
*/
func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Overview(request.Context()))
}

/*
GET /api/v1/occupations/{code}.

Description: Returns a single occupation record.

Request:
  - code: string (occupation code)

Response:
  - 200: Occupation
  - 400: VALIDATION_ERROR: Code contains whitespace or a reserved character
  - 404: NOT_FOUND: Unknown code
*/
func (handler *Handler) occupation(writer http.ResponseWriter, request *http.Request) {
	occupation, err := handler.service.Occupation(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, occupation)
}
