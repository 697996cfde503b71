package memory

import "studyaid/internal/repository"

// table is an insertion-ordered collection with a monotonic ID counter.
// IDs are never reused, even after deletions. It is not synchronized;
// Store holds the lock.
type table[T any] struct {
	items  []T
	lastID int64
	idOf   func(T) int64
	setID  func(*T, int64)
	clone  func(T) T
}

func newTable[T any](idOf func(T) int64, setID func(*T, int64), clone func(T) T) table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return table[T]{idOf: idOf, setID: setID, clone: clone}
}

func (t *table[T]) load(items []T) {
	for _, it := range items {
		t.items = append(t.items, t.clone(it))
		if id := t.idOf(it); id > t.lastID {
			t.lastID = id
		}
	}
}

func (t *table[T]) insert(v T) *T {
	t.lastID++
	t.setID(&v, t.lastID)
	t.items = append(t.items, t.clone(v))
	out := t.clone(v)
	return &out
}

func (t *table[T]) list() []T {
	out := make([]T, len(t.items))
	for i, it := range t.items {
		out[i] = t.clone(it)
	}
	return out
}

func (t *table[T]) index(id int64) int {
	for i, it := range t.items {
		if t.idOf(it) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) has(id int64) bool { return t.index(id) >= 0 }

func (t *table[T]) find(id int64) (*T, error) {
	i := t.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	out := t.clone(t.items[i])
	return &out, nil
}

func (t *table[T]) update(id int64, fn func(*T)) (*T, error) {
	i := t.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	v := t.clone(t.items[i])
	fn(&v)
	t.setID(&v, id)
	t.items[i] = v
	out := t.clone(v)
	return &out, nil
}

func (t *table[T]) remove(id int64) *T {
	i := t.index(id)
	if i < 0 {
		return nil
	}
	removed := t.items[i]
	t.items = append(t.items[:i], t.items[i+1:]...)
	return &removed
}

func (t *table[T]) removeWhere(match func(T) bool) {
	kept := t.items[:0]
	for _, it := range t.items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(t.items); i++ {
		t.items[i] = zero
	}
	t.items = kept
}
