package avltree

import (
	"cmp"
	"fmt"
)

// CheckInvariants - Walks the whole tree and verifies key ordering, stored heights, the AVL balance
// condition, parent links and the entry count. It returns the first violation found.
func (T *Tree[K, V]) CheckInvariants() (err error) {
	if T.root != nil && T.root.parent != nil {
		err = fmt.Errorf("root %v has a parent", T.root.Key())
		return
	}

	var count int
	if _, err = checkR(T.root, nil, nil, &count); err != nil {
		return
	}
	if count != T.size {
		err = fmt.Errorf("tree holds %d nodes but size is %d", count, T.size)
	}

	return
}

// checkR - Verifies the subtree rooted at p where all keys must lie strictly between lo and hi (nil means unbounded)
func checkR[K cmp.Ordered, V any](p *node[K, V], lo, hi *K, count *int) (h int, err error) {
	if p == nil {
		h = -1
		return
	}
	*count++

	k := p.Key()
	if lo != nil && cmp.Compare(k, *lo) <= 0 {
		err = fmt.Errorf("key %v not greater than %v", k, *lo)
		return
	}
	if hi != nil && cmp.Compare(k, *hi) >= 0 {
		err = fmt.Errorf("key %v not less than %v", k, *hi)
		return
	}
	if p.left != nil && p.left.parent != p {
		err = fmt.Errorf("left child of %v has wrong parent link", k)
		return
	}
	if p.right != nil && p.right.parent != p {
		err = fmt.Errorf("right child of %v has wrong parent link", k)
		return
	}

	hl, err := checkR(p.left, lo, &k, count)
	if err != nil {
		return
	}
	hr, err := checkR(p.right, &k, hi, count)
	if err != nil {
		return
	}

	h = max(hl, hr) + 1
	if p.height != h {
		err = fmt.Errorf("node %v has height %d, expected %d", k, p.height, h)
		return
	}
	if d := hr - hl; d < -1 || d > 1 {
		err = fmt.Errorf("node %v is out of balance (%d)", k, d)
	}

	return
}
