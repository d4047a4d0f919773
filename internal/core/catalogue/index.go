// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/taibuivan/katalog/internal/platform/apperr"
	"github.com/taibuivan/katalog/internal/platform/validate"
	"github.com/taibuivan/katalog/pkg/slice"
	"github.com/taibuivan/katalog/pkg/slug"
)

// # Index

// Index is the immutable, in-memory grouping of the classification.
//
// # Concurrency
//
// An Index is fully populated by [Build] and never written afterwards, so it
// is safe for concurrent readers without synchronization.
type Index struct {
	// rodovi maps a rod label to the set of skupina labels seen with it.
	rodovi map[string]map[string]struct{}

	// skupine maps a skupina label to its occupations in dataset order.
	skupine map[string][]Entry

	// occupations maps an occupation code to its full record.
	occupations map[string]Occupation

	// rodBySlug and skupinaBySlug reverse slugs to labels. The first label to
	// claim a slug keeps it.
	rodBySlug     map[string]string
	skupinaBySlug map[string]string

	skipped int
}

/*
Build groups records, given in dataset order, into a new [Index].

Description: Code, rod and skupina are trimmed first. Records without a
rod or skupina, or whose code cannot be a URL path segment, are skipped with
a warning, as are repeated codes after their first occurrence. Slug collisions
between distinct labels are logged; the earlier label keeps the slug.

Parameters:
  - records: []Occupation in dataset order
  - logger: *slog.Logger for build diagnostics

Returns:
  - *Index: The read-only index
*/
func Build(records []Occupation, logger *slog.Logger) *Index {
	index := &Index{
		rodovi:        make(map[string]map[string]struct{}),
		skupine:       make(map[string][]Entry),
		occupations:   make(map[string]Occupation, len(records)),
		rodBySlug:     make(map[string]string),
		skupinaBySlug: make(map[string]string),
	}

	for _, record := range records {
		record.Code = strings.TrimSpace(record.Code)
		record.Rod = strings.TrimSpace(record.Rod)
		record.Skupina = strings.TrimSpace(record.Skupina)

		v := &validate.Validator{}
		v.Required("rod", record.Rod).
			Required("skupina", record.Skupina)
		checkCode(v, record.Code)

		if err := v.Err(); err != nil {
			index.skipped++
			logger.Warn("catalogue_record_skipped",
				slog.String("code", record.Code),
				slog.Any("fields", v.Fields()),
				slog.Any("details", apperr.As(err).Details),
			)
			continue
		}

		if _, seen := index.occupations[record.Code]; seen {
			index.skipped++
			logger.Warn("catalogue_record_duplicate", slog.String("code", record.Code))
			continue
		}

		index.add(record, logger)
	}

	logger.Info("catalogue_index_built",
		slog.Int("occupations", len(index.occupations)),
		slog.Int("rodovi", len(index.rodovi)),
		slog.Int("skupine", len(index.skupine)),
		slog.Int("skipped", index.skipped),
	)

	return index
}

// add places a validated record into both grouping maps.
func (index *Index) add(record Occupation, logger *slog.Logger) {
	index.occupations[record.Code] = record

	members, found := index.rodovi[record.Rod]
	if !found {
		members = make(map[string]struct{})
		index.rodovi[record.Rod] = members
		claimSlug(index.rodBySlug, record.Rod, "rod", logger)
	}
	members[record.Skupina] = struct{}{}

	if _, found := index.skupine[record.Skupina]; !found {
		claimSlug(index.skupinaBySlug, record.Skupina, "skupina", logger)
	}
	index.skupine[record.Skupina] = append(index.skupine[record.Skupina], Entry{
		Code: record.Code,
		Name: record.Name,
	})
}

// claimSlug registers label under its slug unless another label already holds it.
func claimSlug(table map[string]string, label, kind string, logger *slog.Logger) {
	key := slug.From(label)
	if holder, taken := table[key]; taken {
		logger.Warn("catalogue_slug_collision",
			slog.String("kind", kind),
			slog.String("slug", key),
			slog.String("kept", holder),
			slog.String("shadowed", label),
		)
		return
	}
	table[key] = label
}

// # Slug Resolution

// ResolveRodBySlug returns the rod label addressed by slug, or [ErrRodNotFound].
func (index *Index) ResolveRodBySlug(s string) (string, error) {
	label, found := index.rodBySlug[s]
	if !found {
		return "", ErrRodNotFound
	}
	return label, nil
}

// ResolveSkupinaBySlug returns the skupina label addressed by slug, or [ErrSkupinaNotFound].
func (index *Index) ResolveSkupinaBySlug(s string) (string, error) {
	label, found := index.skupinaBySlug[s]
	if !found {
		return "", ErrSkupinaNotFound
	}
	return label, nil
}

// # Queries

// SkupineOf returns the skupina labels of rod in ascending lexical order.
func (index *Index) SkupineOf(rod string) []string {
	return slices.Sorted(maps.Keys(index.rodovi[rod]))
}

// OccupationsOf returns the occupations of skupina in dataset order.
// The returned slice is a copy.
func (index *Index) OccupationsOf(skupina string) []Entry {
	return slices.Clone(index.skupine[skupina])
}

// Occupation returns the full record for code, or [ErrOccupationNotFound].
func (index *Index) Occupation(code string) (Occupation, error) {
	occupation, found := index.occupations[code]
	if !found {
		return Occupation{}, ErrOccupationNotFound
	}
	return occupation, nil
}

// Overview returns every rod, sorted by label, with its sorted skupine and
// all slugs precomputed. The landing page is rendered from it.
func (index *Index) Overview() []RodView {
	rodovi := slices.Sorted(maps.Keys(index.rodovi))
	if len(rodovi) == 0 {
		return []RodView{}
	}

	return slice.Map(rodovi, func(rod string) RodView {
		return RodView{
			Label:   rod,
			Slug:    slug.From(rod),
			Skupine: slice.Map(index.SkupineOf(rod), newSkupinaView),
		}
	})
}

// Len returns the number of indexed occupations.
func (index *Index) Len() int {
	return len(index.occupations)
}

// Skipped returns the number of records rejected while building.
func (index *Index) Skipped() int {
	return index.skipped
}

func newSkupinaView(label string) SkupinaView {
	return SkupinaView{Label: label, Slug: slug.From(label)}
}

// codeReserved lists characters that would break a code used as a path segment.
const codeReserved = "/?#%"

// checkCode adds the rules every occupation code must satisfy.
func checkCode(v *validate.Validator, code string) {
	v.Required("code", code).
		Custom("code", strings.ContainsAny(code, codeReserved) || strings.IndexFunc(code, unicode.IsSpace) >= 0,
			"Must not contain whitespace or any of "+codeReserved)
}
