package orchestration

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/agbru/fibmodes/internal/task"
)

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"inline", ModeInline, false},
		{" Task-Factory ", ModeTaskFactory, false},
		{"await-task", ModeAwaitTask, false},
		{"BACKGROUND", ModeBackgroundWorker, false},
		{"all", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	for _, m := range AllModes() {
		back, err := ParseMode(m.String())
		if err != nil || back != m {
			t.Errorf("round trip of %v failed: %v, %v", m, back, err)
		}
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("String() of unknown mode = %q", got)
	}
	if !ModeTaskFactory.Broken() || ModeInline.Broken() {
		t.Error("only task-factory should be reported as broken")
	}
}

func TestModesToRun(t *testing.T) {
	t.Parallel()
	all, err := ModesToRun("ALL")
	if err != nil || !reflect.DeepEqual(all, AllModes()) {
		t.Errorf("ModesToRun(all) = %v, %v", all, err)
	}
	one, err := ModesToRun("background")
	if err != nil || !reflect.DeepEqual(one, []Mode{ModeBackgroundWorker}) {
		t.Errorf("ModesToRun(background) = %v, %v", one, err)
	}
	if _, err := ModesToRun("warp"); err == nil {
		t.Error("ModesToRun(warp) should fail")
	}
	if names := ModeNames(); len(names) != 4 || names[3] != "background" {
		t.Errorf("ModeNames() = %v", names)
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	tests := map[error]string{
		context.DeadlineExceeded: StatusTimeout,
		context.Canceled:         StatusCanceled,
		task.ErrNotStarted:       StatusNotStarted,
		errors.New("boom"):       StatusError,
	}
	for err, want := range tests {
		if got := statusOf(err); got != want {
			t.Errorf("statusOf(%v) = %q, want %q", err, got, want)
		}
	}
}
