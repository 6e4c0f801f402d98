package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/listoapp/listo/internal/lifecycle"
	"github.com/listoapp/listo/internal/model"
)

// AddTask creates a task from raw input on the given board. Tags are
// stripped into the task's tag set, and a trailing @board mention (when
// smart targeting is enabled) redirects the task to the mentioned board.
// Tasks land on the default board when boardID is unknown. Blank input is
// ignored and returns the zero Task.
func (s *Store) AddTask(raw, boardID string) model.Task {
	if strings.TrimSpace(raw) == "" {
		return model.Task{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	parsed := lifecycle.ParseInput(raw, s.boards, s.settings.SmartTargeting)
	if parsed.BoardID != "" {
		boardID = parsed.BoardID
	}

	board, ok := s.boardByID(boardID)
	if !ok {
		board = s.defaultBoard()
	}

	task := model.Task{
		ID:         uuid.New().String(),
		Text:       parsed.Text,
		Priority:   model.PriorityNormal,
		Tags:       parsed.Tags,
		CreatedAt:  now.UnixMilli(),
		ValidUntil: lifecycle.DeadlineFor(board.Type, now),
		BoardID:    board.ID,
	}
	if board.Type == model.BoardKanban {
		task.ColumnID = model.ColumnTodo
	}

	// Newest-first insertion; display order is re-derived by the query
	// layer anyway.
	s.tasks = append([]model.Task{task}, s.tasks...)
	s.persistTasks()
	return task
}

// ToggleTask flips a task's completion state. Completing a task counts one
// completion event for today; un-completing never takes one back, so the
// activity log only ever grows.
func (s *Store) ToggleTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	if s.tasks[i].Completed {
		s.activity[model.DateKey(s.now())]++
		s.persistActivity()
	}
	s.persistTasks()
}

// DeleteTask removes a task immediately. Unknown ids are ignored.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persistTasks()
}

// ToggleExtension flips a task's extension flag. For ordinary tasks the
// deadline follows the flag: extended tasks get until tomorrow's end of day,
// un-extended ones until today's. Tasks due beyond the extension horizon
// (overtime tasks) keep their deadline; only the flag changes.
func (s *Store) ToggleExtension(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	now := s.now()
	s.tasks[i].IsExtended = !s.tasks[i].IsExtended
	if !lifecycle.Permanent(s.tasks[i].ValidUntil, now) {
		if s.tasks[i].IsExtended {
			s.tasks[i].ValidUntil = lifecycle.NextDayEnd(now)
		} else {
			s.tasks[i].ValidUntil = lifecycle.EndOfDay(now)
		}
	}
	s.persistTasks()
}

// TogglePriority switches a task between normal and high priority.
func (s *Store) TogglePriority(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	if s.tasks[i].Priority == model.PriorityHigh {
		s.tasks[i].Priority = model.PriorityNormal
	} else {
		s.tasks[i].Priority = model.PriorityHigh
	}
	s.persistTasks()
}

// MoveTask places a task in a kanban column. Unknown ids and unknown
// columns are ignored; deadlines are unaffected.
func (s *Store) MoveTask(id, columnID string) {
	if !model.ValidColumn(columnID) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	s.tasks[i].ColumnID = columnID
	s.persistTasks()
}

// UpdateTaskNotes replaces a task's free-form notes.
func (s *Store) UpdateTaskNotes(id, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	s.tasks[i].Notes = notes
	s.persistTasks()
}

// UpdateTaskDueDate sets a task's reminder timestamp (epoch milliseconds,
// zero clears it). Independent of the validity deadline.
func (s *Store) UpdateTaskDueDate(id string, dueDate int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	s.tasks[i].DueDate = dueDate
	s.persistTasks()
}

// ClearCompleted deletes every completed task on the given board.
func (s *Store) ClearCompleted(boardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.BoardID == boardID && t.Completed {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(s.tasks) {
		return
	}

	s.tasks = kept
	s.persistTasks()
}

// SweepExpired removes every task whose deadline has passed at now and
// returns how many were removed. Sweeping is idempotent: when nothing is
// expired the collection is untouched and nothing is written back.
func (s *Store) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if lifecycle.Expired(t, now) {
			continue
		}
		kept = append(kept, t)
	}

	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0
	}

	s.tasks = kept
	s.persistTasks()
	return removed
}
