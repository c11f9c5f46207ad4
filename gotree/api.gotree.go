package gotree

const (

	// HashBase is added to every rooted subtree hash so that each hash is strictly positive and can be fed to log().
	HashBase = 42.0

	// MaxBruteForceVerts caps the vertex count accepted by the permutation search (N! relabelings per comparison).
	MaxBruteForceVerts = 10

	// MaxEnumVerts caps the vertex count accepted by the tree enumerator.
	MaxEnumVerts = 12

	// MaxVerts caps the vertex count of any Graph (N*N cells are allocated up front).
	MaxVerts = 1 << 12
)

// IsoStrategy names an isomorphism test.
type IsoStrategy int32

const (

	// IsoRootedHash compares log-sum rooted subtree hashes.  Valid for trees only.
	IsoRootedHash IsoStrategy = iota

	// IsoBruteForce tries every vertex relabeling.  Valid for any graph, factorial cost.
	IsoBruteForce

	// IsoCanonical uses the rooted hash as a pre-filter and confirms with an exact canonical encoding.  Valid for trees only.
	IsoCanonical
)

func (s IsoStrategy) String() string {
	switch s {
	case IsoRootedHash:
		return "hash"
	case IsoBruteForce:
		return "brute"
	case IsoCanonical:
		return "canonical"
	}
	return "unknown"
}

// ParseIsoStrategy returns the IsoStrategy named by str (as returned by IsoStrategy.String()).
func ParseIsoStrategy(str string) (IsoStrategy, bool) {
	for _, s := range []IsoStrategy{IsoRootedHash, IsoBruteForce, IsoCanonical} {
		if s.String() == str {
			return s, true
		}
	}
	return IsoRootedHash, false
}

// EnumOpts specifies params for a tree enumeration.
type EnumOpts struct {
	NumVerts   int         // vertex count of the trees to enumerate
	Strategy   IsoStrategy // isomorphism test used to drop duplicates
	StopAt     int         // if > 0, stop once this many representatives have been found
	CrossCheck bool        // if set, the result count must match the known unlabeled tree count
}

// DefaultEnumOpts enumerates using the rooted hash with no early stop.
var DefaultEnumOpts = EnumOpts{
	Strategy: IsoRootedHash,
}

// CatalogOpts specifies params for opening a tree Catalog
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

// PrintOpts specifies what is printed when printing a graph
type PrintOpts struct {
	Label  string // Prefix label
	Matrix bool   // if set, prints the adjacency matrix text block
	Edges  bool   // if set, prints the edge list
	Hash   bool   // if set, prints the root-invariant tree hash
}

// DefaultPrintOpts prints the adjacency matrix block only.
var DefaultPrintOpts = PrintOpts{
	Matrix: true,
}

// GenOpts specifies params for random graph generation.
type GenOpts struct {
	NumVerts  int   // vertex count per graph
	Count     int   // number of graphs to generate
	Seed      int64 // rng seed
	EdgeRatio int   // a cell is an edge when rand() % EdgeRatio < 3
}

// DefaultGenOpts generates 20 graphs of 100 vertices, each ordered pair an edge with odds 3 in 15.
var DefaultGenOpts = GenOpts{
	NumVerts:  100,
	Count:     20,
	Seed:      1024,
	EdgeRatio: 15,
}
