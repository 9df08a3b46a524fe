// Package eventlog implements the append-only, replayable event log. Events
// are additionally indexed by tick in a github.com/google/btree ordered
// tree, keyed by (tick, seq), so "events after tick T" queries don't require
// a linear scan.
package eventlog

import (
	"github.com/google/btree"

	"github.com/default-user/world-engine/internal/worldkernel"
)

type tickIndexEntry struct {
	tick uint64
	seq  int
}

func lessTickIndexEntry(a, b tickIndexEntry) bool {
	if a.tick != b.tick {
		return a.tick < b.tick
	}
	return a.seq < b.seq
}

// EventLog is an append-only ordered sequence of WorldEvent. It exposes no
// remove/mutate/truncate-head operation; Truncate only shrinks from the
// tail, for use by rollback-adjacent callers.
type EventLog struct {
	events []worldkernel.WorldEvent
	index  *btree.BTreeG[tickIndexEntry]
}

// New constructs an empty event log.
func New() *EventLog {
	return &EventLog{
		index: btree.NewG(32, lessTickIndexEntry),
	}
}

// Append adds event to the tail of the log. O(1) amortized for the backing
// slice; O(log n) for the tick index.
func (l *EventLog) Append(event worldkernel.WorldEvent) {
	seq := len(l.events)
	l.events = append(l.events, event)
	l.index.ReplaceOrInsert(tickIndexEntry{tick: event.Tick(), seq: seq})
}

// Len reports the number of events in the log.
func (l *EventLog) Len() int { return len(l.events) }

// All returns a copy of every event in append order.
func (l *EventLog) All() []worldkernel.WorldEvent {
	out := make([]worldkernel.WorldEvent, len(l.events))
	copy(out, l.events)
	return out
}

// EventsAfter returns the events whose recorded tick is strictly greater
// than tick, in their original append order.
func (l *EventLog) EventsAfter(tick uint64) []worldkernel.WorldEvent {
	var out []worldkernel.WorldEvent
	l.index.AscendGreaterOrEqual(tickIndexEntry{tick: tick + 1, seq: 0}, func(entry tickIndexEntry) bool {
		out = append(out, l.events[entry.seq])
		return true
	})
	return out
}

// ReplayFrom returns the events that must be applied on top of a restored
// snapshot to reach the log's tail: every event with tick strictly greater
// than the snapshot's.
func ReplayFrom(snapshotTick uint64, l *EventLog) []worldkernel.WorldEvent {
	return l.EventsAfter(snapshotTick)
}

// Truncate shrinks the log to newLen entries, discarding the tail. It is an
// error to request a newLen greater than the current length.
func (l *EventLog) Truncate(newLen int) error {
	if newLen < 0 || newLen > len(l.events) {
		return ErrInvalidTruncateLength
	}
	if newLen == len(l.events) {
		return nil
	}
	l.events = l.events[:newLen]
	rebuilt := btree.NewG(32, lessTickIndexEntry)
	for seq, event := range l.events {
		rebuilt.ReplaceOrInsert(tickIndexEntry{tick: event.Tick(), seq: seq})
	}
	l.index = rebuilt
	return nil
}

// Clear empties the log entirely. Used by SnapshotStore.Checkpoint, which
// absorbs all pending history into the new snapshot, and by
// SnapshotStore.Rollback.
func (l *EventLog) Clear() {
	l.events = nil
	l.index = btree.NewG(32, lessTickIndexEntry)
}
