// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - the minimum balance a slot must hold to persist
package rent

import (
	"math"

	"github.com/bitmark-inc/poolledger/fault"
)

// default parameters
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0

	// storage overhead charged for every slot in addition to its data
	SlotOverhead = 128

	// first value past the largest uint64
	balanceLimit = float64(1 << 64)
)

// Rent - persistence parameters
type Rent struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// Default - the standard parameters
func Default() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance - lamports needed to keep a slot of this data size
func (r Rent) MinimumBalance(size uint64) uint64 {
	bytes := SlotOverhead + size
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// Validate - parameters must be positive and give a representable
// minimum balance for every data size up to maximumSize
func (r Rent) Validate(maximumSize uint64) error {
	if 0 == r.LamportsPerByteYear {
		return fault.ErrInvalidRent
	}
	if !(r.ExemptionThreshold > 0) || math.IsInf(r.ExemptionThreshold, 1) {
		return fault.ErrInvalidRent
	}

	bytes := SlotOverhead + maximumSize
	if bytes < maximumSize || bytes > math.MaxUint64/r.LamportsPerByteYear {
		return fault.ErrInvalidRent
	}
	if float64(bytes*r.LamportsPerByteYear)*r.ExemptionThreshold >= balanceLimit {
		return fault.ErrInvalidRent
	}
	return nil
}
