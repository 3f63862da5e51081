package service

import "company-lookup/internal/lookup/model"

// BureauIndex resolves a normalized domain to exactly one bureau record.
// The source extract may carry several rows per domain; the policy is: a row
// with a credit score beats one without, remaining ties keep the first
// occurrence in the dataset. Lookup is exact-match only — fuzzy matching on
// financial data would risk attributing someone else's credit history.
type BureauIndex struct {
	byDomain map[string]model.BureauRecord
}

func NewBureauIndex(records []model.BureauRecord) *BureauIndex {
	idx := &BureauIndex{byDomain: make(map[string]model.BureauRecord, len(records))}
	for _, r := range records {
		d := normalizeDomain(r.Domain)
		if d == "" {
			continue
		}
		cur, ok := idx.byDomain[d]
		if !ok || (cur.CreditScore == nil && r.CreditScore != nil) {
			idx.byDomain[d] = r
		}
	}
	return idx
}

// Lookup returns the bureau record for a normalized domain. A miss is an
// expected state, not an error.
func (idx *BureauIndex) Lookup(domain string) (model.BureauRecord, bool) {
	r, ok := idx.byDomain[domain]
	return r, ok
}
