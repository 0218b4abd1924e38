package aggregator

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"grievance-map-go/internal/types"
)

// NormalizeKey canonicalizes a free-text region name into the join key
// shared by both datasets: surrounding whitespace trimmed, lower-cased.
// An empty result means the name is unusable and the item carrying it
// must be skipped; the empty string is never a valid key.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Aggregate merges grievance records and boundary features into one
// per-region statistics table keyed by NormalizeKey. nameKey is the
// boundary property holding the region name.
//
// Two passes, each in input order. Pass 1 walks the records: the first
// record seen for a key creates the entry and labels it with the raw
// block name; every record is appended to its entry. Pass 2 walks the
// features: an unseen key becomes a zero-count entry, so every known
// region is represented even with no complaints filed, and an existing
// entry gets its label overwritten with the feature's raw name — the
// boundary dataset's naming is authoritative over free-text complaint
// naming. Items with an empty normalized name contribute nothing.
//
// The result is ordered by total descending, ties broken by collated
// ascending label comparison. Consumers rely on this ordering; it is
// part of the contract, as is determinism across identical inputs.
func Aggregate(records []types.GrievanceRecord, features []types.BoundaryFeature, nameKey string) []*types.RegionStats {
	index := make(map[string]*types.RegionStats)
	var out []*types.RegionStats

	for _, rec := range records {
		key := NormalizeKey(rec.Block)
		if key == "" {
			continue
		}
		entry, ok := index[key]
		if !ok {
			entry = &types.RegionStats{Key: key, Label: rec.Block}
			index[key] = entry
			out = append(out, entry)
		}
		entry.Records = append(entry.Records, rec)
		entry.Total++
	}

	for _, f := range features {
		raw := f.Name(nameKey)
		key := NormalizeKey(raw)
		if key == "" {
			continue
		}
		entry, ok := index[key]
		if !ok {
			entry = &types.RegionStats{Key: key, Label: raw}
			index[key] = entry
			out = append(out, entry)
			continue
		}
		entry.Label = raw
	}

	// Collators keep internal buffers, so build one per call rather
	// than sharing across goroutines.
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return c.CompareString(out[i].Label, out[j].Label) < 0
	})
	return out
}

// Index builds the key-indexed lookup view over one aggregation
// result, used for O(1) access when resolving a selection.
func Index(stats []*types.RegionStats) map[string]*types.RegionStats {
	m := make(map[string]*types.RegionStats, len(stats))
	for _, s := range stats {
		m[s.Key] = s
	}
	return m
}
