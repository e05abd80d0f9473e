package avltree

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
)

// height - Returns the height of p, an empty subtree has height -1
func height[K cmp.Ordered, V any](p *node[K, V]) int {
	if p == nil {
		return -1
	}
	return p.height
}

// balanceOf - Returns height(right) - height(left) for p
func balanceOf[K cmp.Ordered, V any](p *node[K, V]) int {
	if p == nil {
		return 0
	}
	return height(p.right) - height(p.left)
}

// updateHeight - Recomputes the height of p from its children
func updateHeight[K cmp.Ordered, V any](p *node[K, V]) {
	p.height = max(height(p.left), height(p.right)) + 1
}

// leftmost - Returns the node with the smallest key in the subtree rooted at p
func (p *node[K, V]) leftmost() *node[K, V] {
	for p.left != nil {
		p = p.left
	}
	return p
}

// successor - Returns the in-order successor of p by following child and parent links, nil if p is the last node
func (p *node[K, V]) successor() *node[K, V] {
	if p.right != nil {
		return p.right.leftmost()
	}

	q := p.parent
	for q != nil && p == q.right {
		p = q
		q = q.parent
	}

	return q
}

// insertR - Inserts key/value into the subtree rooted at p and returns the new, rebalanced, subtree root.
// The parent link of the returned root is left to the caller.
func (T *Tree[K, V]) insertR(key K, value V, p *node[K, V]) (q *node[K, V], previous V, replaced bool) {
	if p == nil {
		T.size++
		q = &node[K, V]{Entry: engine.NewEntry(key, value)}
		return
	}

	switch c := cmp.Compare(key, p.Key()); {
	case c < 0:
		p.left, previous, replaced = T.insertR(key, value, p.left)
		p.left.parent = p
	case c > 0:
		p.right, previous, replaced = T.insertR(key, value, p.right)
		p.right.parent = p
	default:
		// Key already present, overwrite without touching the structure
		previous = p.SetValue(value)
		replaced = true
		q = p
		return
	}

	q = T.balance(p)
	return
}

// searchR - Returns the node holding key in the subtree rooted at p, nil if not found
func (T *Tree[K, V]) searchR(key K, p *node[K, V]) *node[K, V] {
	if p == nil {
		return nil
	}

	switch c := cmp.Compare(key, p.Key()); {
	case c < 0:
		return T.searchR(key, p.left)
	case c > 0:
		return T.searchR(key, p.right)
	default:
		return p
	}
}

// removeR - Removes key from the subtree rooted at p and returns the new, rebalanced, subtree root.
// A node with two children takes over the entry of its in-order successor, which is then removed
// from the right subtree instead.
func (T *Tree[K, V]) removeR(key K, p *node[K, V]) (q *node[K, V], value V, found bool) {
	if p == nil {
		return
	}

	switch c := cmp.Compare(key, p.Key()); {
	case c < 0:
		p.left, value, found = T.removeR(key, p.left)
		if p.left != nil {
			p.left.parent = p
		}
	case c > 0:
		p.right, value, found = T.removeR(key, p.right)
		if p.right != nil {
			p.right.parent = p
		}
	default:
		value = p.Value()
		found = true

		if p.left == nil || p.right == nil {
			q = p.left
			if q == nil {
				q = p.right
			}
			p.left, p.right, p.parent = nil, nil, nil
			T.size--
			return
		}

		succ := p.right.leftmost()
		p.Entry = succ.Entry
		p.right, _, _ = T.removeR(succ.Key(), p.right)
		if p.right != nil {
			p.right.parent = p
		}
	}

	if !found {
		q = p
		return
	}

	q = T.balance(p)
	return
}

// balance - Recomputes the height of p and rotates if p is out of balance, returns the new subtree root
func (T *Tree[K, V]) balance(p *node[K, V]) *node[K, V] {
	if p == nil {
		return nil
	}

	updateHeight(p)

	switch balanceOf(p) {
	case -2:
		if balanceOf(p.left) <= 0 {
			p = T.rotateRight(p)
		} else {
			p = T.rotateLeftRight(p)
		}
	case 2:
		if balanceOf(p.right) >= 0 {
			p = T.rotateLeft(p)
		} else {
			p = T.rotateRightLeft(p)
		}
	}

	return p
}

// rotateRight - Lifts the left child of p into its place
func (T *Tree[K, V]) rotateRight(p *node[K, V]) *node[K, V] {
	q := p.left
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
	q.parent = p.parent
	p.parent = q

	updateHeight(p)
	updateHeight(q)

	T.logger.Trace("rotate right", "pivot", p.Key(), "new root", q.Key())
	storage.IncrCounter(engine.AVLTree, "rotation")

	return q
}

// rotateLeft - Lifts the right child of p into its place
func (T *Tree[K, V]) rotateLeft(p *node[K, V]) *node[K, V] {
	q := p.right
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
	q.parent = p.parent
	p.parent = q

	updateHeight(p)
	updateHeight(q)

	T.logger.Trace("rotate left", "pivot", p.Key(), "new root", q.Key())
	storage.IncrCounter(engine.AVLTree, "rotation")

	return q
}

// rotateLeftRight - Double rotation for a left-heavy p whose left child is right-heavy
func (T *Tree[K, V]) rotateLeftRight(p *node[K, V]) *node[K, V] {
	p.left = T.rotateLeft(p.left)
	return T.rotateRight(p)
}

// rotateRightLeft - Double rotation for a right-heavy p whose right child is left-heavy
func (T *Tree[K, V]) rotateRightLeft(p *node[K, V]) *node[K, V] {
	p.right = T.rotateRight(p.right)
	return T.rotateLeft(p)
}
