// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/katalog/internal/platform/database/schema"
)

/*
TestCatalogueOccupation_Columns keeps the column list aligned with the migration.
*/
func TestCatalogueOccupation_Columns(t *testing.T) {
	assert.Equal(t, "catalogue.occupation", schema.CatalogueOccupation.Table)
	assert.Equal(t,
		[]string{"code", "name", "description", "rod", "skupina", "position"},
		schema.CatalogueOccupation.Columns(),
	)
}
