package catalog

import (
	"math"
	"runtime"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

/***

Catalog database format:

	kTreePrefix, Nv (byte), CanonicalForm    => TreeRecord
	...

	TreeRecord := Nv (varint), InvariantHash (fixed64), NumEdges (varint), [A, B (varint)]...

Keys for a given Nv are contiguous, so all trees of a given vertex count are a single prefix scan.
Since the key embeds the exact canonical form, a key lookup is an isomorphism test against every tree stored.

***/

const kTreePrefix = byte('T')

// MaxCatalogVerts is the largest vertex count a catalog stores (Nv is a single key byte).
const MaxCatalogVerts = 255

func checkCatalogVerts(numVerts int) error {
	if numVerts < 0 || numVerts > MaxCatalogVerts {
		return errors.Wrapf(gotree.ErrBadCatalogParam, "vertex count %d (max %d)", numVerts, MaxCatalogVerts)
	}
	return nil
}

// Catalog wraps a database of tree representatives keyed by canonical form.
type Catalog interface {
	libtree.GraphAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumTrees returns the number of trees in this catalog with the given vertex count.
	NumTrees(numVerts int) (int64, error)

	// Select sends each tree with the given vertex count to onHit, in canonical form order.
	// Ownership of each Graph travels through the channel.
	Select(numVerts int, onHit chan<- *libtree.Graph) error

	Close() error
}

type catalog struct {
	readOnly bool
	db       *badger.DB
}

// OpenCatalog opens a new or existing tree catalog.  An empty DbPathName opens an in-memory catalog.
func OpenCatalog(opts gotree.CatalogOpts) (Catalog, error) {
	cat := &catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gotree.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %q", opts.DbPathName)
	}

	klog.V(1).Infof("opened tree catalog %q (read-only=%v)", opts.DbPathName, opts.ReadOnly)
	return cat, nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	err := cat.db.Close()
	cat.db = nil
	klog.V(1).Info("closed tree catalog")
	return err
}

func formKey(numVerts int, form []byte) []byte {
	key := make([]byte, 0, 2+len(form))
	key = append(key, kTreePrefix, byte(numVerts))
	return append(key, form...)
}

// TryAddGraph adds X if no isomorphic tree is already in this catalog.
func (cat *catalog) TryAddGraph(X *libtree.Graph) (bool, error) {
	if cat.readOnly {
		return false, errors.Wrap(gotree.ErrBadCatalogParam, "catalog is in read-only mode")
	}
	if err := checkCatalogVerts(X.NumVerts()); err != nil {
		return false, err
	}
	form, err := X.CanonicalForm()
	if err != nil {
		return false, err
	}
	record, err := MarshalTree(X)
	if err != nil {
		return false, err
	}
	key := formKey(X.NumVerts(), form)

	added := false
	err = cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, record)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (cat *catalog) NumTrees(numVerts int) (int64, error) {
	if err := checkCatalogVerts(numVerts); err != nil {
		return 0, err
	}
	prefix := []byte{kTreePrefix, byte(numVerts)}
	count := int64(0)
	err := cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			Prefix: prefix,
		})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (cat *catalog) Select(numVerts int, onHit chan<- *libtree.Graph) error {
	if err := checkCatalogVerts(numVerts); err != nil {
		return err
	}
	prefix := []byte{kTreePrefix, byte(numVerts)}
	return cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   64,
			Prefix:         prefix,
		})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var X *libtree.Graph
			err := it.Item().Value(func(val []byte) error {
				var err error
				X, _, err = UnmarshalTree(val)
				return err
			})
			if err != nil {
				return err
			}
			onHit <- X
		}
		return nil
	})
}

// MarshalTree encodes a tree record: vertex count, invariant hash, then its edge list.
func MarshalTree(X *libtree.Graph) ([]byte, error) {
	hash, err := X.InvariantHash()
	if err != nil {
		return nil, err
	}
	edges := X.Edges()

	buf := proto.NewBuffer(make([]byte, 0, 16+4*len(edges)))
	buf.EncodeVarint(uint64(X.NumVerts()))
	buf.EncodeFixed64(math.Float64bits(hash))
	buf.EncodeVarint(uint64(len(edges)))
	for _, e := range edges {
		buf.EncodeVarint(uint64(e.A))
		buf.EncodeVarint(uint64(e.B))
	}
	return buf.Bytes(), nil
}

// UnmarshalTree decodes a record written by MarshalTree.
func UnmarshalTree(record []byte) (X *libtree.Graph, hash float64, err error) {
	buf := proto.NewBuffer(record)

	var numVerts, hashBits, numEdges uint64
	if numVerts, err = buf.DecodeVarint(); err != nil {
		return nil, 0, errors.Wrap(gotree.ErrBadEncoding, "vertex count")
	}
	if numVerts > MaxCatalogVerts {
		return nil, 0, errors.Wrapf(gotree.ErrBadEncoding, "vertex count %d", numVerts)
	}
	if hashBits, err = buf.DecodeFixed64(); err != nil {
		return nil, 0, errors.Wrap(gotree.ErrBadEncoding, "hash")
	}
	if numEdges, err = buf.DecodeVarint(); err != nil {
		return nil, 0, errors.Wrap(gotree.ErrBadEncoding, "edge count")
	}

	X = libtree.NewGraph(int(numVerts))
	for i := uint64(0); i < numEdges; i++ {
		a, errA := buf.DecodeVarint()
		b, errB := buf.DecodeVarint()
		if errA != nil || errB != nil {
			X.Reclaim()
			return nil, 0, errors.Wrapf(gotree.ErrBadEncoding, "edge %d of %d", i, numEdges)
		}
		if err = X.AddEdge(libtree.E(int(a), int(b))); err != nil {
			X.Reclaim()
			return nil, 0, errors.Wrap(gotree.ErrBadEncoding, err.Error())
		}
	}
	return X, math.Float64frombits(hashBits), nil
}
