package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listoapp/listo/internal/logging"
	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/store"
	"github.com/listoapp/listo/tests/testutil"
)

func TestSweeper_EmitsEventWhenTasksExpire(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	def := boardOfType(t, s, model.BoardDefault)
	s.AddTask("expires tonight", def.ID)

	// Move the clock past the task's end-of-day deadline.
	s.SetNow(func() time.Time { return testutil.FixedTime.AddDate(0, 0, 1) })

	sw := store.NewSweeper(s, 10*time.Millisecond, logging.Nop())
	sw.Start()
	defer sw.Stop()

	select {
	case ev := <-sw.Events():
		assert.Equal(t, 1, ev.Removed)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sweep event")
	}
	assert.Empty(t, s.Tasks())
}

func TestSweeper_QuietWhenNothingExpires(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	def := boardOfType(t, s, model.BoardDefault)
	s.AddTask("fresh task", def.ID)

	sw := store.NewSweeper(s, 10*time.Millisecond, logging.Nop())
	sw.Start()
	defer sw.Stop()

	select {
	case ev := <-sw.Events():
		t.Fatalf("unexpected sweep event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
	require.Len(t, s.Tasks(), 1)
}

func TestSweeper_StopIsIdempotent(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	sw := store.NewSweeper(s, 10*time.Millisecond, logging.Nop())
	sw.Start()
	sw.Stop()
	sw.Stop()

	// A stopped sweeper refuses to restart.
	sw.Start()
	sw.Stop()
}
