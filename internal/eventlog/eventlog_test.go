package eventlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/default-user/world-engine/internal/worldkernel"
)

func stepEvent(tick uint64) worldkernel.WorldEvent {
	w := worldkernel.New(1)
	for w.Tick() < tick {
		w.Step()
	}
	events := w.DrainEvents()
	return events[len(events)-1]
}

func TestAppendAndLen(t *testing.T) {
	l := New()
	require.Equal(t, 0, l.Len())
	l.Append(stepEvent(1))
	l.Append(stepEvent(2))
	require.Equal(t, 2, l.Len())
}

func TestEventsAfterIsStrictlyGreater(t *testing.T) {
	l := New()
	for tick := uint64(1); tick <= 5; tick++ {
		l.Append(stepEvent(tick))
	}
	after := l.EventsAfter(3)
	require.Len(t, after, 2)
	require.EqualValues(t, 4, after[0].Tick())
	require.EqualValues(t, 5, after[1].Tick())
}

func TestTruncateOnlyShrinksFromTail(t *testing.T) {
	l := New()
	for tick := uint64(1); tick <= 4; tick++ {
		l.Append(stepEvent(tick))
	}
	require.NoError(t, l.Truncate(2))
	require.Equal(t, 2, l.Len())
	require.EqualValues(t, 2, l.All()[1].Tick())

	err := l.Truncate(3)
	require.ErrorIs(t, err, ErrInvalidTruncateLength)
}

func TestClearEmptiesLog(t *testing.T) {
	l := New()
	l.Append(stepEvent(1))
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.EventsAfter(0))
}
