// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import "context"

// # Dataset Access

// Source defines the contract for reading the classification snapshot.
type Source interface {

	/*
		Load reads every occupation record.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Occupation: Records in dataset order
		  - error: I/O, decoding or database failures
	*/
	Load(context context.Context) ([]Occupation, error)
}
