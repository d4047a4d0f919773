// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used in hand-written SQL.
package schema

// CatalogueOccupationTable represents the 'catalogue.occupation' table
type CatalogueOccupationTable struct {
	Table       string
	Code        string
	Name        string
	Description string
	Rod         string
	Skupina     string
	Position    string
}

// CatalogueOccupation is the schema definition for catalogue.occupation
var CatalogueOccupation = CatalogueOccupationTable{
	Table:       "catalogue.occupation",
	Code:        "code",
	Name:        "name",
	Description: "description",
	Rod:         "rod",
	Skupina:     "skupina",
	Position:    "position",
}

// Columns lists every column in insertion order.
func (t CatalogueOccupationTable) Columns() []string {
	return []string{t.Code, t.Name, t.Description, t.Rod, t.Skupina, t.Position}
}
