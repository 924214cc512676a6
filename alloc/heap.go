package alloc

// Heap is an unbounded allocator. Each fresh slot is a separate heap object,
// so growing never moves already allocated values.
type Heap[T any] struct {
	items []*T // items[0] is unused so that Nil stays invalid
	free  freeList
}

var _ Allocator[int] = (*Heap[int])(nil)

// NewHeap returns a Heap with room for preAlloc handles before the slot
// table has to grow.
func NewHeap[T any](preAlloc int) *Heap[T] {
	if preAlloc <= 0 {
		preAlloc = 256
	}

	h := &Heap[T]{
		items: make([]*T, 1, preAlloc+1),
	}
	h.free.live = make([]bool, 1, preAlloc+1)

	return h
}

func (h *Heap[T]) Alloc(val T) Ref {
	if ref, ok := h.free.pop(); ok {
		*h.items[ref] = val
		h.free.live[ref] = true
		return ref
	}

	item := new(T)
	*item = val

	h.items = append(h.items, item)
	h.free.live = append(h.free.live, true)

	return Ref(len(h.items) - 1)
}

func (h *Heap[T]) Free(ref Ref) {
	h.free.checkLive(ref, len(h.items)-1)

	var zero T

	*h.items[ref] = zero // drop references held by the value
	h.free.live[ref] = false
	h.free.push(ref)
}

func (h *Heap[T]) At(ref Ref) *T {
	h.free.checkLive(ref, len(h.items)-1)

	return h.items[ref]
}

func (h *Heap[T]) Len() int {
	return len(h.items) - 1 - len(h.free.idx)
}
