package cache

// lruNode is a node in a doubly-linked LRU list. The node stores its key so
// the owning shard can delete the map entry on eviction in O(1).
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList orders keys from most (head) to least (tail) recently used.
// Not thread-safe; the owning shard synchronizes.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

func (l *lruList[K]) Len() int { return l.len }

// PushFront adds a key at the most-recently-used end.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront marks a node most recently used.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	node.prev = nil
	node.next = l.head
	l.head.prev = node
	l.head = node
	l.len++
}

// RemoveOldest unlinks and returns the least recently used key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	key := l.tail.key
	l.unlink(l.tail)
	return key, true
}

// Remove unlinks an arbitrary node.
func (l *lruList[K]) Remove(node *lruNode[K]) {
	l.unlink(node)
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev, node.next = nil, nil
	l.len--
}

// Clear empties the list.
func (l *lruList[K]) Clear() {
	l.head, l.tail, l.len = nil, nil, 0
}
