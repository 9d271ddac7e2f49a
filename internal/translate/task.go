package translate

import (
	"context"
	"fmt"
)

// Task is a translation call in flight. The workflow starts exactly one per
// run and blocks on Wait.
type Task struct {
	done chan struct{}
	text string
	err  error
}

// Start launches req on t and returns immediately.
func Start(ctx context.Context, t Translator, req Request) *Task {
	task := &Task{done: make(chan struct{})}
	go func() {
		defer close(task.done)
		defer func() {
			if r := recover(); r != nil {
				task.err = fmt.Errorf("%s engine panicked: %v", t.Name(), r)
			}
		}()
		task.text, task.err = t.Translate(ctx, req)
	}()
	return task
}

// Done is closed once the call has resolved.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the call resolves.
func (t *Task) Wait() (string, error) {
	<-t.done
	return t.text, t.err
}
