// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/katalog/internal/core/catalogue"
)

// discardLogger swallows build diagnostics.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixtureRecords is a small dataset in deliberate, unsorted order.
func fixtureRecords() []catalogue.Occupation {
	return []catalogue.Occupation{
		{Code: "1120", Name: "Managing director", Description: "Runs **companies**.", Rod: "Managers", Skupina: "Managing directors"},
		{Code: "1111", Name: "Senior official", Description: "", Rod: "Managers", Skupina: "Legislators and senior officials"},
		{Code: "1110", Name: "Legislator", Description: "Drafts laws.", Rod: "Managers", Skupina: "Legislators and senior officials"},
		{Code: "2111", Name: "Fizičar", Description: "Istražuje <script>alert(1)</script> tvar.", Rod: "Stručnjaci", Skupina: "Fizičari i kemičari"},
		{Code: "9001", Name: "Orphan", Description: "No rod.", Rod: "", Skupina: "Managing directors"},
		{Code: "9002", Name: "Drifter", Description: "No skupina.", Rod: "Managers", Skupina: "  "},
	}
}

func newFixtureIndex() *catalogue.Index {
	return catalogue.Build(fixtureRecords(), discardLogger())
}

func newFixtureRenderer(t *testing.T) *catalogue.Renderer {
	t.Helper()
	renderer, err := catalogue.NewRenderer(newFixtureIndex())
	require.NoError(t, err)
	return renderer
}
