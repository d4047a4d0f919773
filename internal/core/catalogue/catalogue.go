// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalogue serves the occupational classification as a browsable tree.

The classification has three levels: a rod (major group) owns skupine
(groups), and a skupina owns the individual occupations (zanimanja), each
identified by a stable code.

# Core Responsibility

  - Index: groups the flat dataset into rod → skupine and skupina →
    occupations, and resolves URL slugs back to their labels.
  - Renderer: produces the HTML fragment of one node in one visual state
    (collapsed or expanded), wired with the action that requests the
    opposite state.
  - Sources: read the dataset snapshot once at startup, from a JSON file or
    from PostgreSQL.

The index is built once and never mutated, so every request reads it without
locking.
*/
package catalogue

import "github.com/taibuivan/katalog/internal/platform/apperr"

// # Errors

var (
	// ErrRodNotFound is returned when no rod label maps to the requested slug.
	ErrRodNotFound = apperr.NotFound("Rod")

	// ErrSkupinaNotFound is returned when no skupina label maps to the requested slug.
	ErrSkupinaNotFound = apperr.NotFound("Skupina")

	// ErrOccupationNotFound is returned for unknown occupation codes.
	ErrOccupationNotFound = apperr.NotFound("Occupation")
)

// # Occupation Domain

// Occupation is one leaf record of the classification, as found in the dataset.
type Occupation struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rod         string `json:"rod"`
	Skupina     string `json:"skupina"`
}

// Entry is the compact form of an occupation listed under its skupina.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// # Overview Domain

// SkupinaView is a skupina label with its URL slug.
type SkupinaView struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// RodView is a rod label with its URL slug and its sorted skupine.
type RodView struct {
	Label   string        `json:"label"`
	Slug    string        `json:"slug"`
	Skupine []SkupinaView `json:"skupine"`
}
