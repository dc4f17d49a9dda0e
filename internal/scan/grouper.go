package scan

import (
	"sort"
	"sync"

	"github.com/bft-labs/dupeclean/internal/domain"
)

type member struct {
	seq int
	rec domain.FileRecord
}

// Grouper accumulates fingerprinted records into digest groups. It is an
// explicit accumulator owned by the caller, safe for concurrent Add calls
// from parallel fingerprint workers. Finalize is the barrier: no group is
// closed until every record has been added.
type Grouper struct {
	mu        sync.Mutex
	algorithm string
	byDigest  map[string][]member
	finalized bool
}

// NewGrouper returns an empty accumulator tagged with the algorithm name
// its digests were computed under.
func NewGrouper(algorithm string) *Grouper {
	return &Grouper{
		algorithm: algorithm,
		byDigest:  make(map[string][]member),
	}
}

// Add records one fingerprinted file. seq is the file's discovery index;
// it restores discovery order no matter which worker finished hashing
// first. Add must not be called after Finalize.
func (g *Grouper) Add(seq int, rec domain.FileRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		panic("grouper: Add after Finalize")
	}
	g.byDigest[rec.Digest] = append(g.byDigest[rec.Digest], member{seq: seq, rec: rec})
}

// Len returns the number of records accumulated so far.
func (g *Grouper) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, ms := range g.byDigest {
		n += len(ms)
	}
	return n
}

// Finalize closes the accumulator and returns the duplicate groups: digests
// with at least two members, members in discovery order, groups ordered by
// the discovery index of their earliest member. Singletons are
// definitionally unique and dropped. The returned groups are read-only.
func (g *Grouper) Finalize() []domain.DigestGroup {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalized = true

	type keyed struct {
		first int
		group domain.DigestGroup
	}
	var out []keyed
	for digest, ms := range g.byDigest {
		if len(ms) < 2 {
			continue
		}
		sort.Slice(ms, func(i, j int) bool { return ms[i].seq < ms[j].seq })
		members := make([]domain.FileRecord, 0, len(ms))
		for _, m := range ms {
			members = append(members, m.rec)
		}
		out = append(out, keyed{
			first: ms[0].seq,
			group: domain.DigestGroup{Digest: digest, Algorithm: g.algorithm, Members: members},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].first < out[j].first })

	groups := make([]domain.DigestGroup, 0, len(out))
	for _, k := range out {
		groups = append(groups, k.group)
	}
	return groups
}
