package service

import (
	"strings"

	"company-lookup/internal/lookup/model"
)

// Scoring weights and confidence thresholds. Fixed constants: identical
// input must always produce identical output.
const (
	nameWeight     = 0.60
	postcodeWeight = 0.30
	addressWeight  = 0.10

	// Partial credit for agreeing on the outward code only.
	outwardCredit = 0.5

	highThreshold   = 0.85
	mediumThreshold = 0.70
	lowThreshold    = 0.50
)

// normalized holds the canonical forms of one request, computed once.
type normalized struct {
	name     string
	postcode string
	address  string
	domain   string
}

func confidenceFor(score float64) model.Confidence {
	switch {
	case score >= highThreshold:
		return model.ConfidenceHigh
	case score >= mediumThreshold:
		return model.ConfidenceMedium
	case score >= lowThreshold:
		return model.ConfidenceLow
	default:
		return model.ConfidenceNoMatch
	}
}

// nameSimilarity compares token sets: every token is paired with the closest
// token on the other side, so word order does not matter and a one-letter
// typo still scores close to exact. Averaged over both directions to keep
// the measure symmetric.
func nameSimilarity(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	return (tokenSetScore(ta, tb) + tokenSetScore(tb, ta)) / 2
}

func tokenSetScore(from, to []string) float64 {
	var total float64
	for _, t := range from {
		best := 0.0
		for _, u := range to {
			if s := similarity(t, u); s > best {
				best = s
			}
		}
		total += best
	}
	return total / float64(len(from))
}

// postcodeSimilarity — exact normalized match scores 1, agreement on the
// outward code alone scores partial credit, anything else scores 0.
func postcodeSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if oa, ob := outwardCode(a), outwardCode(b); oa != "" && oa == ob {
		return outwardCredit
	}
	return 0
}

// addressSimilarity — overlap coefficient between the token sets of the
// input address and the candidate's street+city.
func addressSimilarity(input, candidate string) float64 {
	ta := tokenSet(input)
	tb := tokenSet(candidate)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	smaller := len(ta)
	if len(tb) < smaller {
		smaller = len(tb)
	}
	return float64(shared) / float64(smaller)
}

func tokenSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		m[t] = struct{}{}
	}
	return m
}

// score — weighted composite similarity in [0,1]. The address term only
// participates when the request supplied an address; weights renormalize
// over the fields actually present.
func score(n normalized, cand model.RegistryRecord) float64 {
	ns := nameSimilarity(n.name, normalizeName(cand.Name))
	ps := postcodeSimilarity(n.postcode, normalizePostcode(cand.Postcode))

	total := ns*nameWeight + ps*postcodeWeight
	weight := nameWeight + postcodeWeight
	if n.address != "" {
		as := addressSimilarity(n.address, normalizeAddress(cand.Street+" "+cand.City))
		total += as * addressWeight
		weight += addressWeight
	}
	return total / weight
}

// selectBest scores every candidate and picks the maximum. Ties break on
// ascending company number; a best score below the low threshold is reported
// as no_match even when some candidate is nominally highest.
func selectBest(n normalized, cands []model.RegistryRecord) model.MatchResult {
	var best *model.RegistryRecord
	bestScore := -1.0

	for i := range cands {
		s := score(n, cands[i])
		if s > bestScore || (s == bestScore && best != nil && cands[i].CompanyNumber < best.CompanyNumber) {
			best = &cands[i]
			bestScore = s
		}
	}

	if best == nil || bestScore < lowThreshold {
		return model.MatchResult{Confidence: model.ConfidenceNoMatch}
	}
	return model.MatchResult{
		Record:     best,
		Confidence: confidenceFor(bestScore),
		Score:      bestScore,
	}
}
