package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-lookup/internal/lookup/model"
)

func testRegistry() []model.RegistryRecord {
	return []model.RegistryRecord{
		{CompanyNumber: "1", Name: "Robinson PLC", Postcode: "L7A 5EU"},
		{CompanyNumber: "2", Name: "Robinson Brothers", Postcode: "L7A 9ZZ"},
		{CompanyNumber: "3", Name: "Hughes Ltd", Postcode: "M1 1AA"},
	}
}

func TestRegistryCandidatesExactAndOutward(t *testing.T) {
	idx := NewRegistryIndex(testRegistry())

	got := idx.Candidates("L7A5EU")
	require.Len(t, got, 2, "exact hit plus outward-code neighbour")
	assert.Equal(t, "1", got[0].CompanyNumber)
	assert.Equal(t, "2", got[1].CompanyNumber)
}

func TestRegistryCandidatesOutwardOnly(t *testing.T) {
	idx := NewRegistryIndex(testRegistry())

	got := idx.Candidates("L7A1XX")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].CompanyNumber)
	assert.Equal(t, "2", got[1].CompanyNumber)
}

// A postcode hitting nothing falls back to the full dataset so a typoed
// postcode can still match on name.
func TestRegistryCandidatesFallbackFullScan(t *testing.T) {
	idx := NewRegistryIndex(testRegistry())

	got := idx.Candidates("ZZ99ZZ")
	assert.Len(t, got, 3)
}

func TestRegistryCandidatesEmptyDataset(t *testing.T) {
	idx := NewRegistryIndex(nil)
	assert.Empty(t, idx.Candidates("L7A5EU"))
}

func intPtr(n int) *int { return &n }

func TestBureauIndexExactLookup(t *testing.T) {
	idx := NewBureauIndex([]model.BureauRecord{
		{Domain: "www.Hughes.com", CreditScore: intPtr(887)},
	})

	rec, ok := idx.Lookup("hughes.com")
	require.True(t, ok, "domain is normalized at build time")
	assert.Equal(t, 887, *rec.CreditScore)

	_, ok = idx.Lookup("nobody.example")
	assert.False(t, ok)
}

// Several bureau rows per domain: a row with a credit score wins; remaining
// ties keep the first occurrence.
func TestBureauIndexDuplicatePolicy(t *testing.T) {
	idx := NewBureauIndex([]model.BureauRecord{
		{Domain: "hughes.com", CreditScore: nil, TradeLines: intPtr(3)},
		{Domain: "hughes.com", CreditScore: intPtr(700), TradeLines: intPtr(5)},
		{Domain: "hughes.com", CreditScore: intPtr(900), TradeLines: intPtr(7)},
	})

	rec, ok := idx.Lookup("hughes.com")
	require.True(t, ok)
	assert.Equal(t, 700, *rec.CreditScore, "first scored row wins over later ones")

	idx = NewBureauIndex([]model.BureauRecord{
		{Domain: "hughes.com", CreditScore: nil, TradeLines: intPtr(3)},
		{Domain: "hughes.com", CreditScore: nil, TradeLines: intPtr(9)},
	})
	rec, ok = idx.Lookup("hughes.com")
	require.True(t, ok)
	assert.Equal(t, 3, *rec.TradeLines, "all-unscored ties keep first occurrence")
}
