// Package persist reads and writes the on-disk world directory layout:
// snapshot.bin (one codec-framed Snapshot) and events.log (a sequence of
// length-prefixed codec records, one per WorldEvent).
package persist

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/default-user/world-engine/internal/codec"
	"github.com/default-user/world-engine/internal/eventlog"
	"github.com/default-user/world-engine/internal/snapshot"
	"github.com/default-user/world-engine/internal/worldkernel"
)

const (
	snapshotFileName = "snapshot.bin"
	eventsFileName   = "events.log"
)

// ErrNoSnapshotFile is returned when a world directory has no snapshot.bin.
var ErrNoSnapshotFile = errors.New("persist: directory has no snapshot.bin")

// SaveSnapshot writes snap to <dir>/snapshot.bin, overwriting any existing
// file.
func SaveSnapshot(dir string, snap *snapshot.Snapshot) error {
	data, err := codec.Encode(snap)
	if err != nil {
		return errors.Wrap(err, "persist: encode snapshot")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "persist: create world directory")
	}
	return os.WriteFile(filepath.Join(dir, snapshotFileName), data, 0o644)
}

// LoadSnapshot reads <dir>/snapshot.bin. It returns ErrNoSnapshotFile if the
// file does not exist.
func LoadSnapshot(dir string) (*snapshot.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(dir, snapshotFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshotFile
		}
		return nil, errors.Wrap(err, "persist: read snapshot.bin")
	}
	var snap snapshot.Snapshot
	if err := codec.Decode(data, &snap); err != nil {
		return nil, errors.Wrap(err, "persist: decode snapshot.bin")
	}
	return &snap, nil
}

// SaveEvents writes log's events to <dir>/events.log as length-prefixed
// codec records, truncating any prior contents.
func SaveEvents(dir string, log *eventlog.EventLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "persist: create world directory")
	}
	file, err := os.Create(filepath.Join(dir, eventsFileName))
	if err != nil {
		return errors.Wrap(err, "persist: create events.log")
	}
	defer file.Close()

	for _, event := range log.All() {
		if err := codec.WriteRecord(file, event); err != nil {
			return errors.Wrap(err, "persist: write event record")
		}
	}
	return nil
}

// LoadEvents reads <dir>/events.log into a fresh EventLog. A missing file
// is treated as an empty log, matching a checkpoint with no pending events.
func LoadEvents(dir string) (*eventlog.EventLog, error) {
	log := eventlog.New()
	file, err := os.Open(filepath.Join(dir, eventsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return log, nil
		}
		return nil, errors.Wrap(err, "persist: open events.log")
	}
	defer file.Close()

	for {
		var event worldkernel.WorldEvent
		if err := codec.ReadRecord(file, &event); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "persist: read event record")
		}
		log.Append(event)
	}
	return log, nil
}
