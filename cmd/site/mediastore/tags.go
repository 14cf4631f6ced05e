package mediastore

import "strings"

// Exclusive tag values: at most one entry may carry each of these at
// any time. `service:<slug>` is exclusive per distinct slug.
const (
	TagLogo = "logo"
	TagHero = "hero"

	// ServiceTagPrefix marks per-service media tags, e.g. "service:storage-rentals"
	ServiceTagPrefix = "service:"
)

// IsExclusive reports whether a tag value is subject to the
// one-entry-per-tag constraint
func IsExclusive(tag string) bool {
	if tag == TagLogo || tag == TagHero {
		return true
	}
	return strings.HasPrefix(tag, ServiceTagPrefix) && len(tag) > len(ServiceTagPrefix)
}

// exclusiveTagsOf returns the exclusive tag values present on an entry
func exclusiveTagsOf(entry Entry) []string {
	var out []string
	for _, tag := range entry.Tags {
		if IsExclusive(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// EnforceExclusiveTags resolves exclusive-tag conflicts in favour of
// the entry identified by winnerID: every exclusive tag the winner
// carries is stripped from all other entries, their remaining tags
// untouched. No error is raised for the prior holder; silent
// reassignment is the intended behaviour. The function is idempotent:
// once the winner is the sole holder, re-running it changes nothing.
func EnforceExclusiveTags(entries []Entry, winnerID string) []Entry {
	var claimed []string
	for _, entry := range entries {
		if entry.ID == winnerID {
			claimed = exclusiveTagsOf(entry)
			break
		}
	}

	if len(claimed) == 0 {
		return entries
	}

	claimedSet := make(map[string]struct{}, len(claimed))
	for _, tag := range claimed {
		claimedSet[tag] = struct{}{}
	}

	for i := range entries {
		if entries[i].ID == winnerID {
			continue
		}

		kept := entries[i].Tags[:0:0]
		for _, tag := range entries[i].Tags {
			if _, taken := claimedSet[tag]; taken {
				continue
			}
			kept = append(kept, tag)
		}
		entries[i].Tags = kept
	}

	return entries
}

// normalizeTags trims whitespace, drops empty values and removes
// duplicates while preserving the caller's order
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
