// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/katalog/pkg/slice"
)

func TestMap(t *testing.T) {
	upper := slice.Map([]string{"rod", "skupina"}, strings.ToUpper)
	assert.Equal(t, []string{"ROD", "SKUPINA"}, upper)

	assert.Nil(t, slice.Map[string, int](nil, func(s string) int { return len(s) }))

	empty := slice.Map([]string{}, strings.ToUpper)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
