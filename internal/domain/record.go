package domain

import "time"

// FileRecord represents a single regular file discovered during traversal.
// Path and stat fields are populated by the walker; Digest is populated
// exactly once by the fingerprinter. After that the record is never mutated.
type FileRecord struct {
	// Path is the absolute path of the file.
	Path string

	// Size is the file size in bytes at discovery time.
	Size int64

	// ModTime is the file's modification timestamp at discovery time.
	ModTime time.Time

	// Digest is the lowercase hex content digest. Empty until fingerprinted.
	Digest string
}

// DigestGroup is an ordered set of files sharing one content digest.
// Member order is discovery order. A group is built incrementally by the
// grouper and is read-only once finalized.
type DigestGroup struct {
	// Digest is the shared content digest of every member.
	Digest string

	// Algorithm names the hash algorithm the digest was computed under.
	Algorithm string

	// Members lists the files in discovery order. Every member's Digest
	// equals the group Digest; a finalized group has at least two members.
	Members []FileRecord
}

// Size returns the byte size of one member, which is the byte size of every
// member since content is identical.
func (g DigestGroup) Size() int64 {
	if len(g.Members) == 0 {
		return 0
	}
	return g.Members[0].Size
}

// WastedBytes returns the space reclaimable by keeping a single member.
func (g DigestGroup) WastedBytes() int64 {
	if len(g.Members) < 2 {
		return 0
	}
	return g.Size() * int64(len(g.Members)-1)
}

// TrashEntry records one file relocated into the trash.
type TrashEntry struct {
	// OriginalPath is where the file lived before relocation.
	OriginalPath string

	// TrashPath is where the file lives now.
	TrashPath string

	// MovedAt is when the relocation happened.
	MovedAt time.Time
}
