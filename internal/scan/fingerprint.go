package scan

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// DefaultBlockSize is the chunk size used for streaming digests when the
// caller does not choose one.
const DefaultBlockSize = 64 * 1024

// Algorithm is a streaming hash algorithm configuration. The choice is a
// speed/collision-resistance trade the caller accepts explicitly; sha256 is
// only the offered default.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

// ParseAlgorithm returns the algorithm configuration for the given name.
// Recognized names are md5 (fast, weak), sha1 (medium) and sha256 (strong).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "md5":
		return Algorithm{Name: "md5", New: md5.New}, nil
	case "sha1":
		return Algorithm{Name: "sha1", New: sha1.New}, nil
	case "", "sha256":
		return Algorithm{Name: "sha256", New: sha256.New}, nil
	default:
		return Algorithm{}, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, name)
	}
}

// SumFile computes the lowercase hex digest of the file at path, reading
// fixed-size chunks so peak memory stays bounded by blockSize regardless of
// file size. The context is checked between chunk reads, never mid-read.
// Any open or read failure is returned; the caller excludes the file from
// grouping and continues.
func (a Algorithm) SumFile(ctx context.Context, path string, blockSize int) (string, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := a.New()
	buf := make([]byte, blockSize)
	for {
		if cerr := ctx.Err(); cerr != nil {
			return "", cerr
		}
		n, rerr := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("read %s: %w", path, rerr)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumBytes computes the lowercase hex digest of data. Used by tests and by
// callers that want to compare a file against in-memory content.
func (a Algorithm) SumBytes(data []byte) string {
	h := a.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
