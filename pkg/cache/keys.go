package cache

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// SolutionKey identifies a solved grid and its motif match.
	SolutionKey(tilesHash, motifHash string) string
	// ArtifactKey identifies one rendered output of a solution.
	ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Mark     string `json:"mark,omitempty"`
	Scale    int    `json:"scale,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SolutionKey implements [Keyer].
func (DefaultKeyer) SolutionKey(tilesHash, motifHash string) string {
	return hashKey("solution", tilesHash, motifHash)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", solutionHash, opts)
}

// ScopedKeyer prefixes every key, so that several deployments can share one
// Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// If inner is nil, a [DefaultKeyer] is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SolutionKey implements [Keyer].
func (k *ScopedKeyer) SolutionKey(tilesHash, motifHash string) string {
	return k.prefix + k.inner.SolutionKey(tilesHash, motifHash)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(solutionHash, opts)
}
