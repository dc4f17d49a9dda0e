package scan

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T, algorithm string, workers int) *Scanner {
	t.Helper()
	a, err := ParseAlgorithm(algorithm)
	require.NoError(t, err)
	return &Scanner{Algorithm: a, Workers: workers, Log: zerolog.Nop()}
}

func TestScanner_GroupsIdenticalContent(t *testing.T) {
	tmp := t.TempDir()
	a := writeFile(t, tmp, "a.txt", "hello")
	b := writeFile(t, tmp, "b.txt", "hello")
	writeFile(t, tmp, "c.txt", "world")

	s := newTestScanner(t, "sha256", 1)
	res, err := s.Scan(context.Background(), tmp, Filter{})
	require.NoError(t, err)

	// One group for the two "hello" files; "world" is unique and absent.
	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", g.Digest)
	assert.ElementsMatch(t, []string{a, b}, memberPaths(g))
	assert.Equal(t, int64(5), g.Size())
	assert.Equal(t, int64(5), g.WastedBytes())

	assert.Equal(t, 3, res.Stats.Scanned)
	assert.Equal(t, 0, res.Stats.Skipped)
	assert.Equal(t, 0, res.Stats.Failed)
}

func TestScanner_TwoScansAgree(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "x1.dat", "payload-one")
	writeFile(t, tmp, "x2.dat", "payload-one")
	writeFile(t, tmp, "y1.dat", "payload-two")
	writeFile(t, tmp, "sub/y2.dat", "payload-two")
	writeFile(t, tmp, "z.dat", "unique")

	first, err := newTestScanner(t, "sha256", 4).Scan(context.Background(), tmp, Filter{})
	require.NoError(t, err)
	second, err := newTestScanner(t, "sha256", 4).Scan(context.Background(), tmp, Filter{})
	require.NoError(t, err)

	// An unmodified tree yields identical membership and digests.
	require.Equal(t, len(first.Groups), len(second.Groups))
	for i := range first.Groups {
		assert.Equal(t, first.Groups[i].Digest, second.Groups[i].Digest)
		assert.Equal(t, memberPaths(first.Groups[i]), memberPaths(second.Groups[i]))
	}
}

func TestScanner_ParallelWorkersPreserveOrder(t *testing.T) {
	tmp := t.TempDir()
	want := make(map[string][]string)
	for i := 0; i < 20; i++ {
		name := string(rune('a'+i)) + ".txt"
		content := "dup-" + string(rune('a'+i%4))
		path := writeFile(t, tmp, name, content)
		want[content] = append(want[content], path)
	}

	res, err := newTestScanner(t, "sha256", 8).Scan(context.Background(), tmp, Filter{})
	require.NoError(t, err)

	require.Len(t, res.Groups, 4)
	for _, g := range res.Groups {
		require.Len(t, g.Members, 5)
		// Members must be sorted by discovery order regardless of which
		// worker finished hashing first.
		assert.IsIncreasing(t, memberPaths(g))
	}
}

func TestScanner_SizeFilteredFilesNeverGrouped(t *testing.T) {
	tmp := t.TempDir()
	// Identical content, but both fall outside the size bounds.
	writeFile(t, tmp, "a.bin", "same-content-here")
	writeFile(t, tmp, "b.bin", "same-content-here")

	res, err := newTestScanner(t, "sha256", 1).Scan(context.Background(), tmp, Filter{MinSize: 1000})
	require.NoError(t, err)

	assert.Empty(t, res.Groups)
	assert.Equal(t, 2, res.Stats.Skipped)
	assert.Equal(t, 0, res.Stats.Scanned)
}

func TestScanner_BadRootIsFatal(t *testing.T) {
	s := newTestScanner(t, "sha256", 1)
	_, err := s.Scan(context.Background(), "/definitely/not/a/real/root", Filter{})
	require.Error(t, err)
}

func TestScanner_EveryReadableFileClassifiedOnce(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.txt", "one")
	writeFile(t, tmp, "b.txt", "one")
	writeFile(t, tmp, "c.txt", "two")
	writeFile(t, tmp, "d.txt", "three")

	res, err := newTestScanner(t, "sha256", 2).Scan(context.Background(), tmp, Filter{})
	require.NoError(t, err)

	grouped := 0
	seen := map[string]bool{}
	for _, g := range res.Groups {
		require.GreaterOrEqual(t, len(g.Members), 2)
		for _, m := range g.Members {
			require.False(t, seen[m.Path], "file in two groups: %s", m.Path)
			seen[m.Path] = true
			grouped++
		}
	}
	// 2 duplicates grouped, 2 uniques excluded from the report.
	assert.Equal(t, 2, grouped)
	assert.Equal(t, 4, res.Stats.Scanned)
}
