package store

import (
	"context"

	"github.com/listoapp/listo/internal/backup"
	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/storage"
)

// Export snapshots all four collections into a backup document.
func (s *Store) Export() backup.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := copyTasks(s.tasks)
	boards := copyBoards(s.boards)
	activity := copyActivity(s.activity)
	settings := copySettings(s.settings)

	return backup.Document{
		Todos:    &tasks,
		Activity: &activity,
		Boards:   &boards,
		Settings: &settings,
	}
}

// Import overwrites each collection that is present in the document and
// leaves absent ones untouched, so partial backups (including ones from the
// boardless original format, which carry only todos and activity) restore
// cleanly. The board invariants are re-healed afterwards, exactly as on
// startup. Decoding happens before Import is called, so a malformed
// document never reaches this point.
func (s *Store) Import(doc backup.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Todos != nil {
		s.tasks = copyTasks(*doc.Todos)
	}
	if doc.Boards != nil {
		s.boards = copyBoards(*doc.Boards)
	}
	if doc.Activity != nil {
		s.activity = copyActivity(*doc.Activity)
	}
	if doc.Settings != nil {
		s.settings = copySettings(*doc.Settings)
	}

	s.healBoards()
	s.healTasks()

	s.persistTasks()
	s.persistBoards()
	if doc.Activity != nil {
		s.persistActivity()
	}
	if doc.Settings != nil {
		s.persistSettings()
	}
}

// ClearAllData resets tasks and activity to empty and boards to the
// two-board seed set, and removes their persisted slots. Settings survive.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.activity = model.Activity{}
	s.boards = seedBoards(s.now())

	ctx := context.Background()
	for _, slot := range []storage.Slot{storage.SlotTodos, storage.SlotActivity, storage.SlotBoards} {
		if err := s.storage.Delete(ctx, slot); err != nil {
			s.log.Warnw("deleting collection", "slot", slot, "error", err)
		}
	}
}
