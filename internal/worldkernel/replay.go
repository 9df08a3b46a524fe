package worldkernel

// Replay applies events in order to reconstruct world state. It is a pure,
// total function of the starting world and the event sequence: two callers
// replaying identical inputs reach bit-identical terminal worlds. Replay
// never appends to pending — it reconstructs history, it does not make new
// history.
//
// TransformSet replay enforces that the event's Old field equals the
// entity's current transform, failing ErrReplayInconsistent on mismatch —
// the stricter of the two plausible choices. Stepped replay always trusts
// the recorded NewSeed rather than recomputing it, so
// that replaying a log produced by a different prng.NextSeed revision (or a
// future one) still reproduces exactly what happened, rather than silently
// diverging; a mismatch with what NextSeed(priorSeed) would have produced
// is not itself an error.
func (w *World) Replay(events []WorldEvent) error {
	for _, event := range events {
		switch event.Kind {
		case EventSpawned:
			payload := event.Spawned
			if payload == nil {
				return ErrReplayInconsistent
			}
			if _, exists := w.entities[payload.ID]; exists {
				return ErrReplayInconsistent
			}
			w.insert(payload.ID, payload.Transform)
			w.advanceTick(payload.Tick)

		case EventDespawned:
			payload := event.Despawned
			if payload == nil {
				return ErrReplayInconsistent
			}
			if _, exists := w.entities[payload.ID]; !exists {
				return ErrReplayInconsistent
			}
			w.remove(payload.ID)
			w.advanceTick(payload.Tick)

		case EventTransformSet:
			payload := event.TransformSet
			if payload == nil {
				return ErrReplayInconsistent
			}
			current, exists := w.entities[payload.ID]
			if !exists {
				return ErrReplayInconsistent
			}
			if current.Transform != payload.Old {
				return ErrReplayInconsistent
			}
			current.Transform = payload.New
			w.entities[payload.ID] = current
			w.advanceTick(payload.Tick)

		case EventStepped:
			payload := event.Stepped
			if payload == nil {
				return ErrReplayInconsistent
			}
			w.seed = payload.NewSeed
			w.advanceTick(payload.Tick)

		default:
			return ErrReplayInconsistent
		}
	}
	return nil
}

func (w *World) advanceTick(tick uint64) {
	if tick > w.tick {
		w.tick = tick
	}
}
