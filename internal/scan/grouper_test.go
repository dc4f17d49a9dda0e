package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/dupeclean/internal/domain"
)

func rec(path, digest string) domain.FileRecord {
	return domain.FileRecord{Path: path, Size: 5, Digest: digest}
}

func TestGrouper_DropsSingletons(t *testing.T) {
	g := NewGrouper("sha256")
	g.Add(0, rec("/a", "d1"))
	g.Add(1, rec("/b", "d1"))
	g.Add(2, rec("/c", "d2"))

	groups := g.Finalize()
	require.Len(t, groups, 1)
	assert.Equal(t, "d1", groups[0].Digest)
	assert.Equal(t, "sha256", groups[0].Algorithm)
	assert.Len(t, groups[0].Members, 2)
}

func TestGrouper_RestoresDiscoveryOrder(t *testing.T) {
	// Workers finish out of order; discovery indices put members back.
	g := NewGrouper("sha256")
	g.Add(4, rec("/e", "d1"))
	g.Add(0, rec("/a", "d1"))
	g.Add(2, rec("/c", "d1"))
	g.Add(3, rec("/d", "d2"))
	g.Add(1, rec("/b", "d2"))

	groups := g.Finalize()
	require.Len(t, groups, 2)

	// Groups ordered by earliest member, members in discovery order.
	assert.Equal(t, "d1", groups[0].Digest)
	assert.Equal(t, []string{"/a", "/c", "/e"}, memberPaths(groups[0]))
	assert.Equal(t, "d2", groups[1].Digest)
	assert.Equal(t, []string{"/b", "/d"}, memberPaths(groups[1]))
}

func TestGrouper_EmptyFinalize(t *testing.T) {
	g := NewGrouper("md5")
	assert.Empty(t, g.Finalize())
}

func TestGrouper_AddAfterFinalizePanics(t *testing.T) {
	g := NewGrouper("sha256")
	g.Finalize()
	assert.Panics(t, func() { g.Add(0, rec("/a", "d1")) })
}

func TestGrouper_Len(t *testing.T) {
	g := NewGrouper("sha256")
	assert.Equal(t, 0, g.Len())
	g.Add(0, rec("/a", "d1"))
	g.Add(1, rec("/b", "d2"))
	assert.Equal(t, 2, g.Len())
}

func memberPaths(g domain.DigestGroup) []string {
	out := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		out = append(out, m.Path)
	}
	return out
}
