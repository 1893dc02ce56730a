package memo

import "sync"

type node[O any] struct {
	children map[Key]*node[O]
	value    O
	set      bool
}

func newNode[O any]() *node[O] {
	return &node[O]{children: map[Key]*node[O]{}}
}

// Table is a bounded, two-generation trie keyed by argument paths.
// It is safe for concurrent use.
type Table[O any] struct {
	mu      sync.Mutex
	head    *node[O]
	tail    *node[O]
	size    uint32
	maxSize uint32
}

// NewTable returns a table holding up to maxSize entries per generation.
func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[O]{
		head:    newNode[O](),
		tail:    newNode[O](),
		maxSize: maxSize,
	}
}

// Load looks keys up in the head generation, then in the previous one.
func (t *Table[O]) Load(keys []Key) (O, bool) {
	if len(keys) == 0 {
		panic("Load: empty keys")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, gen := range []*node[O]{t.head, t.tail} {
		if n := find(gen, keys); n != nil && n.set {
			return n.value, true
		}
	}
	var zero O
	return zero, false
}

// Store writes value under keys in the head generation, rotating first
// when the head generation is full.
func (t *Table[O]) Store(keys []Key, value O) {
	if len(keys) == 0 {
		panic("Store: empty keys")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := find(t.head, keys); n != nil && n.set {
		n.value = value
		return
	}
	if t.size == t.maxSize {
		t.tail, t.head = t.head, newNode[O]()
		t.size = 0
	}

	n := t.head
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			child = newNode[O]()
			n.children[k] = child
		}
		n = child
	}
	n.value, n.set = value, true
	t.size++
}

// Len reports the number of entries held in the head generation.
func (t *Table[O]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(t.size)
}

func find[O any](n *node[O], keys []Key) *node[O] {
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
