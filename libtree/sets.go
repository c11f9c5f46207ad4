package libtree

import (
	"github.com/dgraph-io/badger/v3"
)

// CanonicSet allows adding trees and reports if an isomorphic tree has already been added.
type CanonicSet interface {

	// TryAdd adds the given tree if no isomorphic tree is already present.
	//
	// If an isomorphic tree already is in this CanonicSet, this call has no effect and TryAdd() returns false.
	// If X isn't a tree, an error is returned.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(X *Graph) (bool, error)

	// Len returns the number of distinct trees added.
	Len() int

	// Close removes all previously added items from this set.
	Close()
}

func NewCanonicSet() CanonicSet {
	return &canonicSet{}
}

type canonicSet struct {
	lsmSet
	count int
}

// CanonicKey returns the vertex count followed by the tree's exact canonical form.
func CanonicKey(X *Graph) ([]byte, error) {
	form, err := X.CanonicalForm()
	if err != nil {
		return nil, err
	}
	key := make([]byte, 0, len(form)+1)
	key = append(key, byte(X.n))
	return append(key, form...), nil
}

func (set *canonicSet) TryAdd(X *Graph) (bool, error) {
	key, err := CanonicKey(X)
	if err != nil {
		return false, err
	}
	added, err := set.tryAdd(key)
	if added {
		set.count++
	}
	return added, err
}

func (set *canonicSet) Len() int {
	return set.count
}

func (set *canonicSet) Close() {
	set.lsmSet.Close()
	set.count = 0
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() error {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			return err
		}
	}
	return nil
}

func (set *lsmSet) tryAdd(key []byte) (bool, error) {
	if err := set.autoOpen(); err != nil {
		return false, err
	}

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // already present
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
