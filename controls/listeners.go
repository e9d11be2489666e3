package controls

// Listener receives controller events.
type Listener func(Event)

// ListenerID identifies a registered listener. The zero value is never issued.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// listenerList keeps listeners in registration order. Dispatch iterates a
// snapshot, so listeners may add or remove entries while being called.
type listenerList struct {
	next    ListenerID
	entries []listenerEntry
}

func (l *listenerList) add(fn Listener) ListenerID {
	l.next++
	l.entries = append(l.entries, listenerEntry{id: l.next, fn: fn})
	return l.next
}

func (l *listenerList) remove(id ListenerID) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *listenerList) clear() {
	l.entries = nil
}

func (l *listenerList) len() int {
	return len(l.entries)
}

func (l *listenerList) snapshot() []listenerEntry {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]listenerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *listenerList) emit(ev Event) {
	for _, e := range l.snapshot() {
		e.fn(ev)
	}
}
