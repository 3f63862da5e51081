package service

import (
	"errors"
	"fmt"
	"strings"

	"company-lookup/internal/lookup/model"
)

// ErrInvalidInput marks a request missing a required field. The transport
// layer maps it to a client error; it is never folded into a no_match
// response.
var ErrInvalidInput = errors.New("invalid input")

// Lookup reconciles a user-submitted company description against the
// registry and bureau datasets. Both datasets are indexed once at
// construction and never mutated afterwards, so a single Lookup serves
// concurrent requests without locking.
type Lookup struct {
	registry *RegistryIndex
	bureau   *BureauIndex
}

func NewLookup(registry []model.RegistryRecord, bureau []model.BureauRecord) *Lookup {
	return &Lookup{
		registry: NewRegistryIndex(registry),
		bureau:   NewBureauIndex(bureau),
	}
}

// Find runs the full pipeline: validate → normalize → retrieve candidates →
// score and select → enrich from the bureau. Every recoverable condition
// (no match, missing bureau row, unparseable website) resolves into a valid
// response; only missing required fields surface as an error.
func (l *Lookup) Find(req model.LookupRequest) (model.LookupResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.LookupResponse{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Postcode) == "" {
		return model.LookupResponse{}, fmt.Errorf("%w: postcode is required", ErrInvalidInput)
	}

	n := normalized{
		name:     normalizeName(req.Name),
		postcode: normalizePostcode(req.Postcode),
		address:  normalizeAddress(req.Address),
		domain:   normalizeDomain(req.Website),
	}

	res := selectBest(n, l.registry.Candidates(n.postcode))
	if res.Record == nil {
		// Nothing authoritative found: echo the normalized input name,
		// leave everything else null.
		return model.LookupResponse{
			Name:            n.name,
			MatchConfidence: model.ConfidenceNoMatch,
		}, nil
	}

	rec := res.Record
	resp := model.LookupResponse{
		Name: rec.Name,
		Address: model.Address{
			Street:   optional(rec.Street),
			City:     optional(rec.City),
			Postcode: optional(rec.Postcode),
		},
		CompanyNumber:   optional(rec.CompanyNumber),
		MatchConfidence: res.Confidence,
	}

	// Join key into the bureau: the registry's own domain when it models
	// one, otherwise the domain derived from the input website.
	domain := normalizeDomain(rec.Domain)
	if domain == "" {
		domain = n.domain
	}
	if domain != "" {
		resp.Domain = &domain
		if br, ok := l.bureau.Lookup(domain); ok {
			resp.CreditScore = br.CreditScore
			resp.LastDefaultDate = br.LastDefaultDate
			resp.TradeLines = br.TradeLines
		}
	}
	return resp, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
