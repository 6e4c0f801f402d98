// Package store owns the task, board, settings, and activity collections.
// It is the single source of truth: every mutation funnels through it and is
// written back to persistent storage on the same call.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/storage"
)

// Store holds the in-memory collections and persists them slot by slot.
// It is safe for concurrent use by the UI goroutine and the sweeper.
type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	log     *zap.SugaredLogger
	now     func() time.Time

	tasks    []model.Task
	boards   []model.Board
	settings model.Settings
	activity model.Activity
}

// New creates a Store backed by the given storage. Call Load before use.
func New(st storage.Storage, log *zap.SugaredLogger) *Store {
	return &Store{
		storage:  st,
		log:      log,
		now:      time.Now,
		settings: model.DefaultSettings(),
		activity: model.Activity{},
	}
}

// SetNow replaces the store's time source so tests can pin the clock.
func (s *Store) SetNow(now func() time.Time) {
	s.now = now
}

// Tasks returns a snapshot of the task collection.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTasks(s.tasks)
}

// Boards returns a snapshot of the board collection.
func (s *Store) Boards() []model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBoards(s.boards)
}

// Settings returns a snapshot of the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySettings(s.settings)
}

// Activity returns a snapshot of the per-day completion counters.
func (s *Store) Activity() model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActivity(s.activity)
}

// persist serializes a collection into its slot. Persistence is best-effort:
// a failed write is logged and swallowed, never surfaced to the caller
// (persistence is not transactional and nothing here is fatal).
// Callers must hold the write lock.
func (s *Store) persist(slot storage.Slot, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnw("marshaling collection", "slot", slot, "error", err)
		return
	}
	if err := s.storage.Save(context.Background(), slot, data); err != nil {
		s.log.Warnw("saving collection", "slot", slot, "error", err)
	}
}

func (s *Store) persistTasks()    { s.persist(storage.SlotTodos, s.tasks) }
func (s *Store) persistBoards()   { s.persist(storage.SlotBoards, s.boards) }
func (s *Store) persistActivity() { s.persist(storage.SlotActivity, s.activity) }
func (s *Store) persistSettings() { s.persist(storage.SlotSettings, s.settings) }

// taskIndex returns the position of the task with the given id, or -1.
// Callers must hold the lock.
func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// boardByID looks up a board by id. Callers must hold the lock.
func (s *Store) boardByID(id string) (model.Board, bool) {
	for _, b := range s.boards {
		if b.ID == id {
			return b, true
		}
	}
	return model.Board{}, false
}

// defaultBoard returns the first default-type board, falling back to the
// first board. Callers must hold the lock and guarantee boards is non-empty.
func (s *Store) defaultBoard() model.Board {
	for _, b := range s.boards {
		if b.Type == model.BoardDefault {
			return b
		}
	}
	return s.boards[0]
}

func copyTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

func copyBoards(boards []model.Board) []model.Board {
	out := make([]model.Board, len(boards))
	copy(out, boards)
	return out
}

func copyActivity(activity model.Activity) model.Activity {
	out := make(model.Activity, len(activity))
	for k, v := range activity {
		out[k] = v
	}
	return out
}

func copySettings(settings model.Settings) model.Settings {
	out := settings
	if settings.TagColors != nil {
		out.TagColors = make(map[string]string, len(settings.TagColors))
		for k, v := range settings.TagColors {
			out.TagColors[k] = v
		}
	}
	return out
}
