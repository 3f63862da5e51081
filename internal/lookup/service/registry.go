package service

import (
	"sort"

	"company-lookup/internal/lookup/model"
)

// RegistryIndex is an immutable, postcode-keyed view over the company
// registry. Built once, read by any number of concurrent lookups.
type RegistryIndex struct {
	records    []model.RegistryRecord
	byPostcode map[string][]int
	byOutward  map[string][]int
}

func NewRegistryIndex(records []model.RegistryRecord) *RegistryIndex {
	idx := &RegistryIndex{
		records:    records,
		byPostcode: make(map[string][]int),
		byOutward:  make(map[string][]int),
	}
	for i, r := range records {
		pc := normalizePostcode(r.Postcode)
		if pc == "" {
			continue
		}
		idx.byPostcode[pc] = append(idx.byPostcode[pc], i)
		if ow := outwardCode(pc); ow != "" {
			idx.byOutward[ow] = append(idx.byOutward[ow], i)
		}
	}
	return idx
}

// Candidates returns the records sharing the normalized postcode, widened to
// the outward code. When the postcode hits nothing the whole dataset is
// returned, so a typoed postcode can still match on name alone. Never errors;
// an empty result is a normal outcome.
func (idx *RegistryIndex) Candidates(postcode string) []model.RegistryRecord {
	seen := make(map[int]struct{})
	var picks []int
	add := func(ids []int) {
		for _, i := range ids {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			picks = append(picks, i)
		}
	}

	add(idx.byPostcode[postcode])
	if ow := outwardCode(postcode); ow != "" {
		add(idx.byOutward[ow])
	}
	if len(picks) == 0 {
		return idx.records
	}

	sort.Ints(picks) // dataset order, for deterministic scoring
	out := make([]model.RegistryRecord, 0, len(picks))
	for _, i := range picks {
		out = append(out, idx.records[i])
	}
	return out
}
