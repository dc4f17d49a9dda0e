// Package retain selects which member of a duplicate group survives.
// Selection is pure and deterministic: the same group and policy always
// produce the same decision.
package retain

import (
	"fmt"
	"sort"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// Policy is the closed set of retention rules. Adding a policy means
// extending this enum and the exhaustive switch in Select.
type Policy int

const (
	// PolicyFirst keeps the member discovered first.
	PolicyFirst Policy = iota

	// PolicyLast keeps the member discovered last.
	PolicyLast

	// PolicyOldest keeps the member with the minimum mtime, ties broken by
	// discovery order.
	PolicyOldest

	// PolicyNewest keeps the member with the maximum mtime, ties broken by
	// discovery order.
	PolicyNewest
)

// ParsePolicy maps a policy name to its Policy value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "first":
		return PolicyFirst, nil
	case "last":
		return PolicyLast, nil
	case "oldest":
		return PolicyOldest, nil
	case "newest":
		return PolicyNewest, nil
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownPolicy, name)
	}
}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyLast:
		return "last"
	case PolicyOldest:
		return "oldest"
	case PolicyNewest:
		return "newest"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Select partitions a finalized group into exactly one keep and an ordered
// remove list. For first/last the remove list preserves discovery order
// minus the kept member; for oldest/newest it is the mtime-sorted order the
// selection used. The invariant len(Remove)+1 == len(Members) always holds.
func Select(group domain.DigestGroup, policy Policy) (domain.RetentionDecision, error) {
	if len(group.Members) == 0 {
		return domain.RetentionDecision{}, fmt.Errorf("retain: empty group %s", group.Digest)
	}

	ordered := make([]domain.FileRecord, len(group.Members))
	copy(ordered, group.Members)

	switch policy {
	case PolicyFirst:
		// keep = ordered[0]
	case PolicyLast:
		last := ordered[len(ordered)-1]
		copy(ordered[1:], ordered[:len(ordered)-1])
		ordered[0] = last
	case PolicyOldest:
		// Stable sort: equal mtimes stay in discovery order.
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].ModTime.Before(ordered[j].ModTime)
		})
	case PolicyNewest:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].ModTime.After(ordered[j].ModTime)
		})
	default:
		return domain.RetentionDecision{}, fmt.Errorf("%w: %s", domain.ErrUnknownPolicy, policy)
	}

	return domain.RetentionDecision{
		Group:  group,
		Keep:   ordered[0],
		Remove: ordered[1:],
	}, nil
}

// SelectAll computes one decision per finalized group.
func SelectAll(groups []domain.DigestGroup, policy Policy) ([]domain.RetentionDecision, error) {
	decisions := make([]domain.RetentionDecision, 0, len(groups))
	for _, g := range groups {
		d, err := Select(g, policy)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, nil
}
