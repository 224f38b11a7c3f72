// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/poolledger/account"
)

// number of lock stripes, a slot uses the stripe of its first address byte
const stripeCount = 256

type lockTable struct {
	stripes [stripeCount]sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{}
}

// lock - take every stripe covering the addresses in ascending order
//
// returns the function that releases them
func (l *lockTable) lock(addresses []account.Address) func() {
	seen := make(map[int]struct{}, len(addresses))
	stripes := make([]int, 0, len(addresses))
	for _, a := range addresses {
		n := int(a[0])
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		stripes = append(stripes, n)
	}
	sort.Ints(stripes)

	for _, n := range stripes {
		l.stripes[n].Lock()
	}
	return func() {
		for i := len(stripes) - 1; i >= 0; i -= 1 {
			l.stripes[stripes[i]].Unlock()
		}
	}
}
