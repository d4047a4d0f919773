// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/taibuivan/katalog/pkg/slice"
)

//go:embed templates/*.html
var templateFS embed.FS

// # Presentation State

// Kind names the level of a node in the classification tree.
type Kind string

const (
	KindRod        Kind = "rod"
	KindSkupina    Kind = "skupina"
	KindOccupation Kind = "occupation"
)

// State is the visual state of a node. For occupations, expanded means the
// description is shown.
type State string

const (
	StateCollapsed State = "collapsed"
	StateExpanded  State = "expanded"
)

// Opposite returns the state that a node's embedded action requests.
func (s State) Opposite() State {
	if s == StateExpanded {
		return StateCollapsed
	}
	return StateExpanded
}

// # View Models

type skupinaView struct {
	Label       string
	Slug        string
	Occupations []Entry
}

type occupationView struct {
	Code        string
	Name        string
	Description template.HTML
}

type pageView struct {
	Title  string
	Rodovi []RodView
}

// # Renderer

// Renderer turns (kind, identifier, state) into an HTML fragment.
//
// Every call resolves the identifier against the index and renders from
// scratch; nothing is cached between requests.
type Renderer struct {
	index     *Index
	templates *template.Template
	markdown  goldmark.Markdown
}

// NewRenderer parses the embedded fragment templates.
func NewRenderer(index *Index) (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("catalogue: parse templates: %w", err)
	}

	return &Renderer{
		index:     index,
		templates: templates,
		// Default options keep goldmark in safe mode: raw HTML is omitted.
		markdown: goldmark.New(),
	}, nil
}

/*
Render produces the fragment for one node in one state.

Description: Rod and skupina nodes are addressed by slug, occupations by code.
An expanded rod or skupina lists its children in their collapsed state; an
expanded occupation adds its description rendered from Markdown.

Parameters:
  - kind: Kind of node
  - id: string (slug or occupation code)
  - state: State to render

Returns:
  - template.HTML: The fragment
  - error: ErrRodNotFound, ErrSkupinaNotFound, ErrOccupationNotFound, or a
    rendering failure
*/
func (renderer *Renderer) Render(kind Kind, id string, state State) (template.HTML, error) {
	name := string(kind) + "_" + string(state)
	if renderer.templates.Lookup(name) == nil {
		return "", fmt.Errorf("catalogue: no fragment for %s in state %s", kind, state)
	}

	var (
		data any
		err  error
	)
	switch kind {
	case KindRod:
		data, err = renderer.rodData(id, state)
	case KindSkupina:
		data, err = renderer.skupinaData(id, state)
	case KindOccupation:
		data, err = renderer.occupationData(id, state)
	}
	if err != nil {
		return "", err
	}

	return renderer.execute(name, data)
}

// RenderPage renders the landing page listing every rod collapsed.
func (renderer *Renderer) RenderPage(title string) (template.HTML, error) {
	return renderer.execute("page", pageView{
		Title:  title,
		Rodovi: renderer.index.Overview(),
	})
}

func (renderer *Renderer) rodData(s string, state State) (RodView, error) {
	label, err := renderer.index.ResolveRodBySlug(s)
	if err != nil {
		return RodView{}, err
	}

	view := RodView{Label: label, Slug: s}
	if state == StateExpanded {
		view.Skupine = slice.Map(renderer.index.SkupineOf(label), newSkupinaView)
	}
	return view, nil
}

func (renderer *Renderer) skupinaData(s string, state State) (skupinaView, error) {
	label, err := renderer.index.ResolveSkupinaBySlug(s)
	if err != nil {
		return skupinaView{}, err
	}

	view := skupinaView{Label: label, Slug: s}
	if state == StateExpanded {
		view.Occupations = renderer.index.OccupationsOf(label)
	}
	return view, nil
}

func (renderer *Renderer) occupationData(code string, state State) (occupationView, error) {
	occupation, err := renderer.index.Occupation(code)
	if err != nil {
		return occupationView{}, err
	}

	view := occupationView{Code: occupation.Code, Name: occupation.Name}
	if state == StateExpanded {
		view.Description, err = renderer.description(occupation.Description)
		if err != nil {
			return occupationView{}, err
		}
	}
	return view, nil
}

// description converts Markdown text to HTML. Blank text yields no markup.
func (renderer *Renderer) description(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var buffer bytes.Buffer
	if err := renderer.markdown.Convert([]byte(text), &buffer); err != nil {
		return "", fmt.Errorf("catalogue: render description: %w", err)
	}

	// goldmark output is sanitized by construction
	return template.HTML(strings.TrimSpace(buffer.String())), nil
}

func (renderer *Renderer) execute(name string, data any) (template.HTML, error) {
	var buffer bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buffer, name, data); err != nil {
		return "", fmt.Errorf("catalogue: execute %s: %w", name, err)
	}
	return template.HTML(buffer.String()), nil
}
