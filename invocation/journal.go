// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/storage"
	"github.com/bitmark-inc/poolledger/util"
)

// EntryKind - what produced a journal entry
type EntryKind byte

// entry kinds
const (
	Executed EntryKind = 1
	Minted   EntryKind = 2
	Funded   EntryKind = 3
)

// counter keys
var (
	journalCounterKey   = []byte("journal")
	mintedCounterKey    = []byte("minted")
	fundedCounterKey    = []byte("funded")
	extractedCounterKey = []byte("external")
)

// Entry - one committed change
type Entry struct {
	Sequence    uint64            `json:"sequence"`
	Kind        EntryKind         `json:"kind"`
	Timestamp   time.Time         `json:"timestamp"`
	Amount      uint64            `json:"amount"`
	Instruction []byte            `json:"instruction"`
	Accounts    []account.Address `json:"accounts"`
}

// String - name of an entry kind
func (k EntryKind) String() string {
	switch k {
	case Executed:
		return "executed"
	case Minted:
		return "minted"
	case Funded:
		return "funded"
	default:
		return "unknown"
	}
}

// MarshalText - kind as its name
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - kind from its name
func (k *EntryKind) UnmarshalText(s []byte) error {
	for _, candidate := range []EntryKind{Executed, Minted, Funded} {
		if string(s) == candidate.String() {
			*k = candidate
			return nil
		}
	}
	return fault.ErrMalformedJournal
}

// Pack - entry value as stored, the sequence is the key
//
//	kind ++ timestamp(varint) ++ amount(varint) ++
//	instruction length(varint) ++ instruction ++ count(varint) ++ addresses
func (e *Entry) Pack() []byte {
	buffer := []byte{byte(e.Kind)}
	buffer = util.AppendVarint64(buffer, uint64(e.Timestamp.Unix()))
	buffer = util.AppendVarint64(buffer, e.Amount)
	buffer = util.AppendVarint64(buffer, uint64(len(e.Instruction)))
	buffer = append(buffer, e.Instruction...)
	buffer = util.AppendVarint64(buffer, uint64(len(e.Accounts)))
	for _, a := range e.Accounts {
		buffer = append(buffer, a[:]...)
	}
	return buffer
}

// UnpackEntry - restore an entry read from the journal pool
func UnpackEntry(key []byte, buffer []byte) (*Entry, error) {
	if 8 != len(key) || 0 == len(buffer) {
		return nil, fault.ErrMalformedJournal
	}

	e := &Entry{
		Sequence: binary.BigEndian.Uint64(key),
		Kind:     EntryKind(buffer[0]),
	}
	n := 1

	timestamp, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrMalformedJournal
	}
	e.Timestamp = time.Unix(int64(timestamp), 0).UTC()
	n += count

	amount, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrMalformedJournal
	}
	e.Amount = amount
	n += count

	length, count := util.FromVarint64(buffer[n:])
	if 0 == count || uint64(len(buffer)-n-count) < length {
		return nil, fault.ErrMalformedJournal
	}
	n += count
	e.Instruction = append([]byte{}, buffer[n:n+int(length)]...)
	n += int(length)

	accounts, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ErrMalformedJournal
	}
	n += count
	if uint64(len(buffer)-n) != accounts*account.AddressLength {
		return nil, fault.ErrMalformedJournal
	}
	e.Accounts = make([]account.Address, accounts)
	for i := range e.Accounts {
		copy(e.Accounts[i][:], buffer[n:])
		n += account.AddressLength
	}
	return e, nil
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}

// Journal - read up to count entries starting at a sequence number
func (h *Host) Journal(start uint64, count int) ([]*Entry, error) {
	h.RLock()
	defer h.RUnlock()

	cursor := storage.Pool.Journal.NewFetchCursor().Seek(sequenceKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]*Entry, 0, len(elements))
	for _, element := range elements {
		e, err := UnpackEntry(element.Key, element.Value)
		if nil != err {
			h.log.Errorf("journal: %x  error: %s", element.Key, err)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// the journal counter must name the last journal entry
func checkJournal() error {
	n, _ := storage.Pool.Counters.GetN(journalCounterKey)
	last, found := storage.Pool.Journal.LastElement()
	if !found {
		if 0 != n {
			return fault.ErrMalformedJournal
		}
		return nil
	}
	if 8 != len(last.Key) || binary.BigEndian.Uint64(last.Key) != n {
		return fault.ErrMalformedJournal
	}
	return nil
}

// JournalLength - number of entries written
func (h *Host) JournalLength() uint64 {
	h.RLock()
	defer h.RUnlock()

	n, _ := storage.Pool.Counters.GetN(journalCounterKey)
	return n
}
