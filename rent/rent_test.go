// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/rent"
)

func TestMinimumBalance(t *testing.T) {
	r := rent.Default()

	assert.Equal(t, uint64(890880), r.MinimumBalance(0), "empty slot")
	assert.Equal(t, uint64(1781760), r.MinimumBalance(128), "record slot")

	cheap := rent.Rent{
		LamportsPerByteYear: 1,
		ExemptionThreshold:  1.0,
	}
	assert.Equal(t, uint64(138), cheap.MinimumBalance(10), "custom")

	free := rent.Rent{}
	assert.Equal(t, uint64(0), free.MinimumBalance(128), "zero")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, rent.Default().Validate(128), "default")
	assert.Nil(t, rent.Default().Validate(10*1024*1024), "large slot")

	items := []struct {
		name string
		rent rent.Rent
		size uint64
	}{
		{"zero lamports", rent.Rent{LamportsPerByteYear: 0, ExemptionThreshold: 2.0}, 128},
		{"zero threshold", rent.Rent{LamportsPerByteYear: 3480, ExemptionThreshold: 0}, 128},
		{"negative threshold", rent.Rent{LamportsPerByteYear: 3480, ExemptionThreshold: -1}, 128},
		{"infinite threshold", rent.Rent{LamportsPerByteYear: 3480, ExemptionThreshold: math.Inf(1)}, 128},
		{"NaN threshold", rent.Rent{LamportsPerByteYear: 3480, ExemptionThreshold: math.NaN()}, 128},
		{"size wraps", rent.Default(), math.MaxUint64 - 10},
		{"product wraps", rent.Rent{LamportsPerByteYear: math.MaxUint64 / 100, ExemptionThreshold: 1.0}, 128},
		{"scaled past limit", rent.Rent{LamportsPerByteYear: math.MaxUint64 / 1024, ExemptionThreshold: 8.0}, 128},
	}
	for _, item := range items {
		assert.Equal(t, fault.ErrInvalidRent, item.rent.Validate(item.size), item.name)
	}
}
