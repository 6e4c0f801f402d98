package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/storage"
)

// seedBoards returns the two-board seed set: one default board and the
// permanent overtime board.
func seedBoards(now time.Time) []model.Board {
	return []model.Board{
		{
			ID:        uuid.New().String(),
			Title:     "My Day",
			CreatedAt: now.UnixMilli(),
			Type:      model.BoardDefault,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Overtime",
			CreatedAt: now.UnixMilli(),
			Type:      model.BoardOvertime,
		},
	}
}

// Load bootstraps the collections from storage. Each slot loads
// independently; a missing or unparseable slot falls back to its seed value,
// so Load never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	if s.loadSlot(ctx, storage.SlotTodos, &s.tasks) != nil {
		s.tasks = nil
	}

	s.activity = model.Activity{}
	if s.loadSlot(ctx, storage.SlotActivity, &s.activity) != nil || s.activity == nil {
		s.activity = model.Activity{}
	}

	s.boards = nil
	if s.loadSlot(ctx, storage.SlotBoards, &s.boards) != nil {
		s.boards = nil
	}

	s.settings = model.DefaultSettings()
	if s.loadSlot(ctx, storage.SlotSettings, &s.settings) != nil {
		s.settings = model.DefaultSettings()
	}

	s.healBoards()
	s.healTasks()
}

// loadSlot reads one slot into dst. A missing slot is silent; a corrupt one
// is logged. Either way the caller falls back to the slot's seed value.
func (s *Store) loadSlot(ctx context.Context, slot storage.Slot, dst interface{}) error {
	data, err := s.storage.Load(ctx, slot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warnw("loading collection", "slot", slot, "error", err)
		}
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warnw("parsing collection, falling back to seed", "slot", slot, "error", err)
		return err
	}
	return nil
}

// healBoards restores the board invariants after load or import: at least
// one board exists, and exactly the overtime board is present even when the
// stored set predates it. Callers must hold the write lock.
func (s *Store) healBoards() {
	if len(s.boards) == 0 {
		s.boards = seedBoards(s.now())
		return
	}

	for _, b := range s.boards {
		if b.Type == model.BoardOvertime {
			return
		}
	}
	s.boards = append(s.boards, model.Board{
		ID:        uuid.New().String(),
		Title:     "Overtime",
		CreatedAt: s.now().UnixMilli(),
		Type:      model.BoardOvertime,
	})
}

// healTasks assigns orphaned tasks (stored before boards existed, or whose
// board was removed out from under them) to the default board. Callers must
// hold the write lock.
func (s *Store) healTasks() {
	def := s.defaultBoard()
	for i := range s.tasks {
		if s.tasks[i].BoardID == "" {
			s.tasks[i].BoardID = def.ID
			continue
		}
		if _, ok := s.boardByID(s.tasks[i].BoardID); !ok {
			s.tasks[i].BoardID = def.ID
		}
	}
}
