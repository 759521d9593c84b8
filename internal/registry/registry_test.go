package registry

import (
	"testing"
	"time"

	"github.com/openclaw/clawctl/internal/testutil/testlog"
)

func TestDefaultRegistryValidates(t *testing.T) {
	testlog.Start(t)
	reg := Default()
	if reg.Len() != 2 {
		t.Fatalf("unexpected default task count: %d", reg.Len())
	}
	if err := Validate(reg); err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}
	if _, ok := reg.Lookup("resources"); !ok {
		t.Fatalf("expected resources task")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestWithTaskLeavesReceiverUntouched(t *testing.T) {
	testlog.Start(t)
	base := Default()
	updated := base.WithTask(Task{Key: "resources", Schedule: "*/5 * * * *", Description: "resource monitor"})

	got, _ := base.Lookup("resources")
	if got.Schedule != "*/30 * * * *" {
		t.Fatalf("base registry mutated: %q", got.Schedule)
	}
	got, _ = updated.Lookup("resources")
	if got.Schedule != "*/5 * * * *" {
		t.Fatalf("updated registry missing replacement: %q", got.Schedule)
	}
	if updated.Len() != base.Len() {
		t.Fatalf("replace changed length: %d != %d", updated.Len(), base.Len())
	}
}

func TestWithTaskAppendsNewKey(t *testing.T) {
	testlog.Start(t)
	base := Default()
	updated := base.WithTask(Task{Key: "briefing", Schedule: "0 8 * * *", Description: "morning briefing"})
	if updated.Len() != base.Len()+1 {
		t.Fatalf("expected append, got length %d", updated.Len())
	}
	tasks := updated.Tasks()
	if tasks[len(tasks)-1].Key != "briefing" {
		t.Fatalf("appended task not last: %+v", tasks)
	}
}

func TestValidateRejectsBadRegistries(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		reg  Registry
	}{
		{"blank key", New(Task{Key: " ", Schedule: "* * * * *"})},
		{"duplicate key", New(
			Task{Key: "a", Schedule: "* * * * *"},
			Task{Key: "a", Schedule: "* * * * *"},
		)},
		{"bad schedule", New(Task{Key: "a", Schedule: "not cron"})},
		{"six fields", New(Task{Key: "a", Schedule: "* * * * * *"})},
	}
	for _, tc := range cases {
		if err := Validate(tc.reg); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestNextRun(t *testing.T) {
	testlog.Start(t)
	task := Task{Key: "resources", Schedule: "*/30 * * * *"}
	from := time.Date(2026, 8, 26, 12, 10, 0, 0, time.UTC)
	next, err := task.NextRun(from)
	if err != nil {
		t.Fatalf("next run: %v", err)
	}
	want := time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("unexpected next run: %v", next)
	}

	hourly := Task{Key: "evolution", Schedule: "0 * * * *"}
	next, err = hourly.NextRun(from)
	if err != nil {
		t.Fatalf("next run: %v", err)
	}
	want = time.Date(2026, 8, 26, 13, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("unexpected hourly next run: %v", next)
	}

	if _, err := (Task{Schedule: "bogus"}).NextRun(from); err == nil {
		t.Fatalf("expected parse error")
	}
}
