package sinks

import (
	"bufio"
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/default-user/world-engine/logging"
)

// JSONFileSink batches events and flushes them as newline-delimited JSON to
// a file, either when the batch fills or when a flush-interval ticker
// fires, whichever comes first.
type JSONFileSink struct {
	mu       sync.Mutex
	writer   *bufio.Writer
	file     *os.File
	buffer   []logging.Event
	ticker   *time.Ticker
	shutdown chan struct{}
}

// NewJSONFile opens (or creates) filePath for append and starts the
// background flush loop.
func NewJSONFile(filePath string, maxBatch int, flushInterval time.Duration) (*JSONFileSink, error) {
	if filePath == "" {
		filePath = "events.jsonl"
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	if maxBatch <= 0 {
		maxBatch = 32
	}
	if flushInterval <= 0 {
		flushInterval = 2 * time.Second
	}
	sink := &JSONFileSink{
		writer:   bufio.NewWriter(file),
		file:     file,
		buffer:   make([]logging.Event, 0, maxBatch),
		ticker:   time.NewTicker(flushInterval),
		shutdown: make(chan struct{}),
	}
	go sink.loop()
	return sink, nil
}

func (s *JSONFileSink) loop() {
	for {
		select {
		case <-s.ticker.C:
			s.Flush()
		case <-s.shutdown:
			return
		}
	}
}

// Write implements logging.Sink.
func (s *JSONFileSink) Write(event logging.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffer = append(s.buffer, cloneForJSON(event))
	if len(s.buffer) >= cap(s.buffer) {
		return s.flushLocked()
	}
	return nil
}

// Flush writes any buffered events to disk immediately.
func (s *JSONFileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *JSONFileSink) flushLocked() error {
	if len(s.buffer) == 0 {
		return nil
	}
	encoder := json.NewEncoder(s.writer)
	encoder.SetEscapeHTML(false)
	for _, event := range s.buffer {
		if err := encoder.Encode(event); err != nil {
			return err
		}
	}
	s.buffer = s.buffer[:0]
	return s.writer.Flush()
}

// Close implements logging.Sink.
func (s *JSONFileSink) Close(context.Context) error {
	close(s.shutdown)
	s.ticker.Stop()
	flushErr := s.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	var closeErr error
	if s.file != nil {
		closeErr = s.file.Close()
	}
	if flushErr != nil {
		if closeErr != nil {
			return errors.Join(flushErr, closeErr)
		}
		return flushErr
	}
	return closeErr
}

func cloneForJSON(event logging.Event) logging.Event {
	cloned := event
	if len(event.Targets) > 0 {
		cloned.Targets = append([]logging.EntityRef(nil), event.Targets...)
	}
	if event.Extra != nil {
		copied := make(map[string]any, len(event.Extra))
		for k, v := range event.Extra {
			copied[k] = v
		}
		cloned.Extra = copied
	}
	return cloned
}
