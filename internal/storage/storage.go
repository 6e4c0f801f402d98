package storage

import (
	"context"
	"errors"
)

// Slot identifies one independently stored collection document.
type Slot string

// The four persisted slots.
const (
	SlotTodos    Slot = "todos"
	SlotActivity Slot = "activity"
	SlotBoards   Slot = "boards"
	SlotSettings Slot = "settings"
)

// ErrNotFound is returned by Load when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Storage persists one JSON document per slot. Implementations must treat
// Save as a full overwrite of the slot's document.
type Storage interface {
	Load(ctx context.Context, slot Slot) ([]byte, error)
	Save(ctx context.Context, slot Slot, doc []byte) error
	Delete(ctx context.Context, slot Slot) error
	Close() error
}
