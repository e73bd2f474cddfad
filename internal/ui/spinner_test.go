package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSpinnerModelQuitsOnTaskDone(t *testing.T) {
	taskErr := errors.New("boom")
	m := newSpinnerModel("working", func() error { return taskErr })

	updated, cmd := m.Update(taskDoneMsg{err: taskErr})
	if cmd == nil {
		t.Fatal("expected a quit command after taskDoneMsg")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if got := updated.(spinnerModel).err; !errors.Is(got, taskErr) {
		t.Errorf("model err = %v, want %v", got, taskErr)
	}
}

func TestSpinnerModelAdvancesOnTick(t *testing.T) {
	m := newSpinnerModel("working", func() error { return nil })

	_, cmd := m.Update(spinner.TickMsg{ID: m.spinner.ID()})
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestSpinnerModelIgnoresKeys(t *testing.T) {
	m := newSpinnerModel("working", func() error { return nil })

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("key presses should not produce commands")
	}
	if updated.(spinnerModel).err != nil {
		t.Error("key presses should not alter the result")
	}
}

func TestSpinnerModelView(t *testing.T) {
	m := newSpinnerModel("Migrating project to Sonic testnet...", func() error { return nil })
	if view := m.View(); !strings.Contains(view, "Migrating project to Sonic testnet...") {
		t.Errorf("view missing message: %q", view)
	}
}

// WithSpinner runs the task directly when stderr is not a TTY, which is
// always the case under go test.
func TestWithSpinnerNonTTY(t *testing.T) {
	ran := false
	err := WithSpinner("working", func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithSpinner() error = %v", err)
	}
	if !ran {
		t.Error("task did not run")
	}
}

func TestWithSpinnerPropagatesError(t *testing.T) {
	want := errors.New("migration failed")
	err := WithSpinner("working", func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("WithSpinner() error = %v, want %v", err, want)
	}
}
