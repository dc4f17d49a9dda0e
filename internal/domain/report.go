package domain

import "time"

// GroupReport is the externally visible record for one duplicate group:
// the digest, one representative size, the full ordered member list and the
// keep/remove partition. Formatting and export are adapter concerns.
type GroupReport struct {
	Digest    string   `json:"hash"`
	Algorithm string   `json:"algorithm"`
	Size      int64    `json:"size"`
	Count     int      `json:"count"`
	Files     []string `json:"files"`
	Keep      string   `json:"keep"`
	Remove    []string `json:"remove"`
	Wasted    int64    `json:"wasted_bytes"`
}

// ScanStats counts what the walk and fingerprint phases saw.
type ScanStats struct {
	// Scanned counts files successfully fingerprinted.
	Scanned int `json:"scanned"`

	// Skipped counts files excluded by the size or extension filters.
	Skipped int `json:"skipped"`

	// Failed counts files excluded by stat or read failures.
	Failed int `json:"failed"`
}

// Report is the structured output of one run, handed to report sinks.
type Report struct {
	Root        string        `json:"root"`
	Algorithm   string        `json:"algorithm"`
	GeneratedAt time.Time     `json:"timestamp"`
	TotalGroups int           `json:"total_groups"`
	Duplicates  int           `json:"duplicate_files"`
	WastedBytes int64         `json:"wasted_bytes"`
	Scan        ScanStats     `json:"scan"`
	Groups      []GroupReport `json:"duplicates"`
}

// BuildGroupReport derives the external record for one decided group.
func BuildGroupReport(d RetentionDecision) GroupReport {
	g := d.Group
	files := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		files = append(files, m.Path)
	}
	remove := make([]string, 0, len(d.Remove))
	for _, m := range d.Remove {
		remove = append(remove, m.Path)
	}
	return GroupReport{
		Digest:    g.Digest,
		Algorithm: g.Algorithm,
		Size:      g.Size(),
		Count:     len(g.Members),
		Files:     files,
		Keep:      d.Keep.Path,
		Remove:    remove,
		Wasted:    g.WastedBytes(),
	}
}
