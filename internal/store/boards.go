package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/listoapp/listo/internal/model"
)

// AddBoard creates a user board of the given type ("default" or "kanban";
// anything else falls back to "default"). Returns false, without creating
// anything, when the title is blank or the board cap is reached.
func (s *Store) AddBoard(title, boardType string) (model.Board, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Board{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.boards) >= model.MaxBoards {
		return model.Board{}, false
	}

	if boardType != model.BoardKanban {
		boardType = model.BoardDefault
	}

	board := model.Board{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: s.now().UnixMilli(),
		Type:      boardType,
	}
	s.boards = append(s.boards, board)
	s.persistBoards()
	return board, true
}

// DeleteBoard removes a board and every task on it. The last remaining
// board and the overtime board cannot be deleted; those requests, like
// unknown ids, are silent no-ops. Returns whether a board was removed.
func (s *Store) DeleteBoard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.boards) <= 1 {
		return false
	}

	idx := -1
	for i, b := range s.boards {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.boards[idx].Type == model.BoardOvertime {
		return false
	}

	s.boards = append(s.boards[:idx], s.boards[idx+1:]...)
	s.persistBoards()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.BoardID == id {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) != len(s.tasks) {
		s.tasks = kept
		s.persistTasks()
	}
	return true
}

// UpdateBoardName renames a board. Blank titles and unknown ids are ignored.
func (s *Store) UpdateBoardName(id, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.boards {
		if s.boards[i].ID == id {
			s.boards[i].Title = title
			s.persistBoards()
			return
		}
	}
}

// UpdateSettings replaces the settings record wholesale.
func (s *Store) UpdateSettings(settings model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = copySettings(settings)
	s.persistSettings()
}
