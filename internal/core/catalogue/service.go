// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"context"
	"errors"
	"html/template"
	"log/slog"

	"github.com/taibuivan/katalog/internal/platform/ctxutil"
	"github.com/taibuivan/katalog/internal/platform/validate"
)

// ErrEmptyCatalogue is reported by [Service.Ready] when no record survived indexing.
var ErrEmptyCatalogue = errors.New("catalogue: index is empty")

// # Service Layer

// Service exposes the read operations of the catalogue.
//
// It holds the process-wide index and renderer; both are read-only, so a
// single Service is shared by every request.
type Service struct {
	index    *Index
	renderer *Renderer
	title    string
}

// NewService constructs a new catalogue [Service].
func NewService(index *Index, renderer *Renderer, title string) *Service {
	return &Service{index: index, renderer: renderer, title: title}
}

/*
Fragment renders the markup of one node in the requested state.

Parameters:
  - context: context.Context
  - kind: Kind (rod, skupina, occupation)
  - id: string (slug or occupation code)
  - state: State

Returns:
  - template.HTML: Fragment to swap into the page
  - error: apperr.NotFound for unknown identifiers, rendering failures otherwise
*/
func (service *Service) Fragment(context context.Context, kind Kind, id string, state State) (template.HTML, error) {
	fragment, err := service.renderer.Render(kind, id, state)
	if err != nil {
		return "", err
	}

	ctxutil.GetLogger(context).DebugContext(context, "catalogue_fragment_rendered",
		slog.String("kind", string(kind)),
		slog.String("id", id),
		slog.String("state", string(state)),
	)

	return fragment, nil
}

/*
Page renders the landing page with every rod collapsed.

Parameters:
  - context: context.Context

Returns:
  - template.HTML: Full HTML document
  - error: Rendering failures
*/
func (service *Service) Page(context context.Context) (template.HTML, error) {
	return service.renderer.RenderPage(service.title)
}

// Overview returns the sorted rod → skupine structure.
func (service *Service) Overview(context context.Context) []RodView {
	return service.index.Overview()
}

/*
Occupation returns one occupation record by code.

Parameters:
  - context: context.Context
  - code: string (occupation code)

Returns:
  - Occupation: The full record
  - error: VALIDATION_ERROR for codes no record can carry, ErrOccupationNotFound otherwise
*/
func (service *Service) Occupation(context context.Context, code string) (Occupation, error) {
	v := &validate.Validator{}
	checkCode(v, code)
	if err := v.Err(); err != nil {
		return Occupation{}, err
	}

	return service.index.Occupation(code)
}

// Ready reports whether the catalogue has anything to serve.
func (service *Service) Ready() error {
	if service.index.Len() == 0 {
		return ErrEmptyCatalogue
	}
	return nil
}
