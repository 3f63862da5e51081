package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Robinson PLC ", "robinson"},
		{"ACME Corp. Ltd", "acme corp"},
		{"Tech & Software LLC", "tech and software"},
		{"Smith-Jones\tHoldings Group", "smith jones holdings"},
		{"robinson", "robinson"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeName(tc.in), "normalizeName(%q)", tc.in)
	}
}

func TestNormalizePostcode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" l7a 5eu ", "L7A5EU"},
		{"SW1A 1AA", "SW1A1AA"},
		{"m1\t1aa", "M11AA"},
		{"L7A5EU", "L7A5EU"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizePostcode(tc.in), "normalizePostcode(%q)", tc.in)
	}
}

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"http://www.hughes.com", "hughes.com"},
		{"https://www.Example.com:8080/path?q=1", "example.com"},
		{"hughes.com", "hughes.com"},
		{"@hughes.com", "hughes.com"},
		{"WWW.HUGHES.COM", "hughes.com"},
		{"not a url", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeDomain(tc.in), "normalizeDomain(%q)", tc.in)
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "928 jodie land", normalizeAddress(" 928 Jodie-Land, "))
	assert.Equal(t, "", normalizeAddress(""))
}

// Normalizing an already-normalized value must return it unchanged.
func TestNormalizationIdempotence(t *testing.T) {
	names := []string{"Robinson PLC", "Tech & Software LLC", "ACME Corp. Ltd"}
	for _, n := range names {
		once := normalizeName(n)
		assert.Equal(t, once, normalizeName(once), "name %q", n)
	}

	postcodes := []string{" l7a 5eu ", "SW1A 1AA"}
	for _, p := range postcodes {
		once := normalizePostcode(p)
		assert.Equal(t, once, normalizePostcode(once), "postcode %q", p)
	}

	domains := []string{"http://www.hughes.com", "Example.com"}
	for _, d := range domains {
		once := normalizeDomain(d)
		assert.Equal(t, once, normalizeDomain(once), "domain %q", d)
	}
}

func TestOutwardCode(t *testing.T) {
	assert.Equal(t, "L7A", outwardCode("L7A5EU"))
	assert.Equal(t, "M1", outwardCode("M11AA"))
	assert.Equal(t, "", outwardCode("AB1"))
	assert.Equal(t, "", outwardCode(""))
}
