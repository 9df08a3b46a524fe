// Package snapshot implements content-addressed point-in-time capture of a
// world: deep copies of (tick, seed, entities) plus an FNV-1a fingerprint
// over their canonical encoding, used for corruption detection (not
// cryptographic integrity) on save/load.
package snapshot

import (
	"github.com/default-user/world-engine/internal/codec"
	"github.com/default-user/world-engine/internal/worldkernel"
)

// fnvOffset64 and fnvPrime64 are the standard FNV-1a 64-bit constants.
const (
	fnvOffset64 uint64 = 0xCBF29CE484222325
	fnvPrime64  uint64 = 0x100000001B3
)

// fnv1a64 computes the FNV-1a hash of data.
func fnv1a64(data []byte) uint64 {
	h := fnvOffset64
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// fingerprintBody is the canonical-encoding target: exactly the three
// fields a fingerprint covers, in this field order, with no Fingerprint
// field of its own (encoding the fingerprint would be circular).
type fingerprintBody struct {
	Tick     uint64                    `json:"tick"`
	Seed     uint64                    `json:"seed"`
	Entities []worldkernel.EntityData  `json:"entities"`
}

// Snapshot is a captured, fingerprinted copy of world state at some tick.
type Snapshot struct {
	Tick        uint64                    `json:"tick"`
	Seed        uint64                    `json:"seed"`
	Entities    []worldkernel.EntityData  `json:"entities"`
	Fingerprint uint64                    `json:"fingerprint"`
}

func fingerprintOf(tick, seed uint64, entities []worldkernel.EntityData) (uint64, error) {
	body, err := codec.Canonical(fingerprintBody{Tick: tick, Seed: seed, Entities: entities})
	if err != nil {
		return 0, err
	}
	return fnv1a64(body), nil
}

// Capture deep-copies w's (tick, seed, entities) in insertion order and
// computes the fingerprint over them.
func Capture(w *worldkernel.World) (*Snapshot, error) {
	entities := w.All()
	fp, err := fingerprintOf(w.Tick(), w.Seed(), entities)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Tick:        w.Tick(),
		Seed:        w.Seed(),
		Entities:    entities,
		Fingerprint: fp,
	}, nil
}

// Verify recomputes the fingerprint from the current field values and
// reports whether it matches the stored one. Mutating Tick, Seed, or any
// entity after capture causes this to return false.
func (s *Snapshot) Verify() bool {
	if s == nil {
		return false
	}
	fp, err := fingerprintOf(s.Tick, s.Seed, s.Entities)
	if err != nil {
		return false
	}
	return fp == s.Fingerprint
}

// Restore produces a fresh world with this snapshot's tick, seed, and
// entities (in original order), and an empty pending log.
func (s *Snapshot) Restore() *worldkernel.World {
	return worldkernel.RestoreFrom(s.Tick, s.Seed, s.Entities)
}
