package model

// Task priority values.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Kanban column values. ColumnID is only meaningful on boards of type
// "kanban"; an empty value is treated as ColumnTodo.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnDone       = "done"
)

// Task is a single actionable item with an expiration deadline.
// JSON field names follow the backup document format, so exports from
// earlier versions of the app import cleanly.
type Task struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Completed  bool     `json:"completed"`
	Priority   string   `json:"priority"`
	Tags       []string `json:"tags"`
	CreatedAt  int64    `json:"createdAt"`
	ValidUntil int64    `json:"validUntil"`
	IsExtended bool     `json:"isExtended"`
	BoardID    string   `json:"boardId"`
	ColumnID   string   `json:"columnId,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	DueDate    int64    `json:"dueDate,omitempty"`
}

// Column returns the effective kanban column, defaulting to ColumnTodo.
func (t Task) Column() string {
	if t.ColumnID == "" {
		return ColumnTodo
	}
	return t.ColumnID
}

// ValidColumn reports whether id names a known kanban column.
func ValidColumn(id string) bool {
	switch id {
	case ColumnTodo, ColumnInProgress, ColumnDone:
		return true
	}
	return false
}
