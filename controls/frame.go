package controls

// TaskID identifies a scheduled frame task.
type TaskID uint64

type frameTask struct {
	id TaskID
	fn func()
}

// FrameLoop runs scheduled tasks once per Tick. The host calls Tick from
// ebiten's Update, so every task runs on the game goroutine.
type FrameLoop struct {
	next  TaskID
	tasks []frameTask
	// cancelled during the current tick
	cancelled map[TaskID]bool
	ticking   bool
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Schedule adds fn to the loop. A task scheduled during Tick first runs on the
// following Tick.
func (f *FrameLoop) Schedule(fn func()) TaskID {
	f.next++
	f.tasks = append(f.tasks, frameTask{id: f.next, fn: fn})
	return f.next
}

// Cancel removes a task. Cancelling an unknown id is a no-op.
func (f *FrameLoop) Cancel(id TaskID) {
	for i, t := range f.tasks {
		if t.id == id {
			f.tasks = append(f.tasks[:i:i], f.tasks[i+1:]...)
			if f.ticking {
				if f.cancelled == nil {
					f.cancelled = map[TaskID]bool{}
				}
				f.cancelled[id] = true
			}
			return
		}
	}
}

// Tick runs every task scheduled before the call.
func (f *FrameLoop) Tick() {
	if f.ticking {
		return
	}
	f.ticking = true
	defer func() {
		f.ticking = false
		f.cancelled = nil
	}()

	run := make([]frameTask, len(f.tasks))
	copy(run, f.tasks)
	for _, t := range run {
		if f.cancelled[t.id] {
			continue
		}
		t.fn()
	}
}

// Len returns the number of scheduled tasks.
func (f *FrameLoop) Len() int {
	return len(f.tasks)
}
