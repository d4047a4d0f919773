// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/katalog/pkg/slug"
)

/*
TestFrom covers the normalization pipeline on ASCII and Croatian labels.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_word", "Managers", "managers"},
		{"spaces", "Legislators and senior officials", "legislators-and-senior-officials"},
		{"croatian_diacritics", "Čelnici i članovi zakonodavnih tijela", "celnici-i-clanovi-zakonodavnih-tijela"},
		{"dj_is_dropped", "Građevinari", "graevinari"},
		{"punctuation_removed", "Managers, directors & chief executives", "managers-directors-chief-executives"},
		{"slash_removed_not_split", "a/b", "ab"},
		{"underscore_kept", "snake_case label", "snake_case-label"},
		{"hyphen_runs_collapse", "one -- two", "one-two"},
		{"trimmed", "  -Edge-  ", "edge"},
		{"digits", "Skupina 11", "skupina-11"},
		{"only_symbols", "???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Deterministic verifies that repeated calls on the same label agree.
*/
func TestFrom_Deterministic(t *testing.T) {
	label := "Stručnjaci za zaštitu okoliša"
	assert.Equal(t, slug.From(label), slug.From(label))
}

/*
TestFrom_Collision documents that distinct labels may share a slug.
*/
func TestFrom_Collision(t *testing.T) {
	assert.Equal(t, slug.From("Građa"), slug.From("Graa"))
	assert.Equal(t, slug.From("Uprava i ured"), slug.From("uprava-i-ured"))
}
