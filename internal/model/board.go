package model

// Board type values. Exactly one board of type "overtime" exists at all
// times; its tasks are exempt from expiration.
const (
	BoardDefault  = "default"
	BoardOvertime = "overtime"
	BoardKanban   = "kanban"
)

// MaxBoards caps the total board count: five user boards plus the
// permanent overtime board.
const MaxBoards = 6

// Board is a named container partitioning tasks.
type Board struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	Type      string `json:"type"`
}
