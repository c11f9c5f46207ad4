package libtree

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// HashIndex maps a root-invariant tree hash to the slots (representative indices) sharing that hash.
// Keys iterate in ascending order.
type HashIndex struct {
	tree *redblacktree.Tree
}

func NewHashIndex() *HashIndex {
	return &HashIndex{
		tree: redblacktree.NewWith(utils.Float64Comparator),
	}
}

// Put appends slot to the bucket for key.
func (idx *HashIndex) Put(key float64, slot int) {
	var slots []int
	if existing, found := idx.tree.Get(key); found {
		slots = existing.([]int)
	}
	idx.tree.Put(key, append(slots, slot))
}

// Lookup returns the slots stored under key (nil if none).
func (idx *HashIndex) Lookup(key float64) []int {
	if existing, found := idx.tree.Get(key); found {
		return existing.([]int)
	}
	return nil
}

// NumKeys returns the number of distinct hashes.
func (idx *HashIndex) NumKeys() int {
	return idx.tree.Size()
}

// Keys returns all distinct hashes in ascending order.
func (idx *HashIndex) Keys() []float64 {
	keys := make([]float64, 0, idx.tree.Size())
	for _, k := range idx.tree.Keys() {
		keys = append(keys, k.(float64))
	}
	return keys
}

func (idx *HashIndex) Clear() {
	idx.tree.Clear()
}
