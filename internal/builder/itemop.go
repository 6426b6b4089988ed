package builder

import (
	"fmt"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

// Item operation verbs. Applied to a named list field inside a section,
// these cover the micro-CRUD every array-valued field needs: append a
// default item, remove one, swap with a neighbour, or flip a two-state
// value in place.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpUp     = "up"
	OpDown   = "down"
	OpToggle = "toggle"
)

// ItemOp describes one edit to a list field of a section. Parent
// addresses an item inside a nested list (a plan's features, a footer
// column's links); it is ignored for top-level fields.
type ItemOp struct {
	Field  string `json:"field" validate:"required"`
	Op     string `json:"op" validate:"required,oneof=add remove up down toggle"`
	Index  int    `json:"index"`
	Parent int    `json:"parent"`
}

// ApplyListOp runs the add/remove/up/down verbs against a list, using
// newItem to build the appended default. Toggle is field-specific and
// handled by the vocabulary packages.
func ApplyListOp[T any](items []T, op ItemOp, newItem func() T) ([]T, error) {
	switch op.Op {
	case OpAdd:
		return Append(items, newItem()), nil
	case OpRemove:
		if op.Index < 0 || op.Index >= len(items) {
			return nil, domain.ErrIndexOutOfRange
		}
		return RemoveAt(items, op.Index), nil
	case OpUp:
		return MoveUp(items, op.Index), nil
	case OpDown:
		return MoveDown(items, op.Index), nil
	}
	return nil, fmt.Errorf("unsupported op %q for field %q", op.Op, op.Field)
}
