package registry

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Task binds one periodic workspace chore to its cron schedule. The schedule
// is a standard five-field expression interpreted by an external scheduler.
type Task struct {
	Key         string
	Schedule    string
	Description string
}

// Registry is an ordered, immutable set of task descriptors. Mutating
// operations return a new Registry value.
type Registry struct {
	tasks []Task
}

var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Default returns the heartbeat chores the workspace ships with.
func Default() Registry {
	return New(
		Task{Key: "resources", Schedule: "*/30 * * * *", Description: "resource monitor"},
		Task{Key: "evolution", Schedule: "0 * * * *", Description: "evolution analysis"},
	)
}

// New builds a registry preserving the given task order.
func New(tasks ...Task) Registry {
	copied := make([]Task, len(tasks))
	copy(copied, tasks)
	return Registry{tasks: copied}
}

// Tasks returns the descriptors in registration order.
func (r Registry) Tasks() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r Registry) Len() int {
	return len(r.tasks)
}

// Lookup finds a task by key.
func (r Registry) Lookup(key string) (Task, bool) {
	for _, t := range r.tasks {
		if t.Key == key {
			return t, true
		}
	}
	return Task{}, false
}

// WithTask returns a new registry with the task replaced in place when the key
// exists, appended otherwise. The receiver is left untouched.
func (r Registry) WithTask(task Task) Registry {
	out := r.Tasks()
	for i := range out {
		if out[i].Key == task.Key {
			out[i] = task
			return Registry{tasks: out}
		}
	}
	return Registry{tasks: append(out, task)}
}

// Validate checks for blank or duplicate keys and unparsable schedules.
func Validate(r Registry) error {
	seen := make(map[string]struct{}, len(r.tasks))
	for i, t := range r.tasks {
		key := strings.TrimSpace(t.Key)
		if key == "" {
			return fmt.Errorf("task[%d] missing key", i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate task key %q", key)
		}
		seen[key] = struct{}{}
		if _, err := scheduleParser.Parse(t.Schedule); err != nil {
			return fmt.Errorf("task %q schedule %q: %w", key, t.Schedule, err)
		}
	}
	return nil
}

// NextRun evaluates the task's cron expression from the given instant.
func (t Task) NextRun(from time.Time) (time.Time, error) {
	sched, err := scheduleParser.Parse(t.Schedule)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse schedule %q: %w", t.Schedule, err)
	}
	return sched.Next(from), nil
}
