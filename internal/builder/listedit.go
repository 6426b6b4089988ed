package builder

// Array-valued sub-fields (links, skills, experiences, logos, plan
// features, FAQ items) all follow the same CRUD micro-pattern: append
// creates a new item at the end, delete filters by index, update replaces
// at index, and reordering uses explicit up/down swaps. Every helper
// returns a fresh slice; callers rely on copy-on-write for re-render
// correctness.

// Append returns a copy of list with item added at the end.
func Append[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// RemoveAt returns a copy of list without the element at index i.
// Out-of-range indices are a no-op.
func RemoveAt[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return clone(list)
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// ReplaceAt returns a copy of list with the element at index i replaced.
// Out-of-range indices are a no-op.
func ReplaceAt[T any](list []T, i int, v T) []T {
	out := clone(list)
	if i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}

// MoveUp swaps the element at index i with the one before it. The first
// element (and any out-of-range index) is a no-op.
func MoveUp[T any](list []T, i int) []T {
	out := clone(list)
	if i > 0 && i < len(out) {
		out[i-1], out[i] = out[i], out[i-1]
	}
	return out
}

// MoveDown swaps the element at index i with the one after it. The last
// element (and any out-of-range index) is a no-op.
func MoveDown[T any](list []T, i int) []T {
	out := clone(list)
	if i >= 0 && i < len(out)-1 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

// Move removes the element at src and reinserts it at dst: the list
// shrinks by one, then grows by one at the destination position. These
// are the standard drag-and-drop reorder semantics.
func Move[T any](list []T, src, dst int) []T {
	if src < 0 || src >= len(list) || dst < 0 || dst >= len(list) {
		return clone(list)
	}
	moved := list[src]
	out := RemoveAt(list, src)
	tail := make([]T, 0, len(list))
	tail = append(tail, out[:dst]...)
	tail = append(tail, moved)
	return append(tail, out[dst:]...)
}

func clone[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
