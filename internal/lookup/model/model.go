package model

// LookupRequest is the raw, user-submitted company description. Fields may
// carry arbitrary casing and surrounding whitespace; nothing is normalized
// before the request reaches the reconciler.
type LookupRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Website  string `json:"website"`
}

// RegistryRecord is one authoritative company-registry entry. CompanyNumber
// is unique within the dataset and acts as the stable join key. Domain is
// optional; not every registry export carries one.
type RegistryRecord struct {
	CompanyNumber string
	Name          string
	Street        string
	City          string
	Postcode      string
	Domain        string
}

// BureauRecord is one credit-bureau extract row, keyed by domain. The domain
// is not guaranteed unique in the source data; nil fields mean the bureau
// holds no value, which is an expected state rather than an error.
type BureauRecord struct {
	Domain          string
	CreditScore     *int
	LastDefaultDate *string // ISO YYYY-MM-DD
	TradeLines      *int
}

// Confidence is the closed set of match-quality tiers.
type Confidence string

const (
	ConfidenceNoMatch Confidence = "no_match"
	ConfidenceLow     Confidence = "low"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceHigh    Confidence = "high"
)

// MatchResult is the per-request outcome of candidate selection. Record is
// nil when nothing cleared the low threshold. Score is internal and never
// exposed to callers.
type MatchResult struct {
	Record     *RegistryRecord
	Confidence Confidence
	Score      float64
}

type Address struct {
	Street   *string `json:"street"`
	City     *string `json:"city"`
	Postcode *string `json:"postcode"`
}

// LookupResponse is the contract-shaped output. Everything except Name and
// MatchConfidence is nullable; on no_match Name echoes the normalized input
// name and every other field stays null.
type LookupResponse struct {
	Name            string     `json:"name"`
	Address         Address    `json:"address"`
	CompanyNumber   *string    `json:"company_number"`
	Domain          *string    `json:"domain"`
	CreditScore     *int       `json:"credit_score"`
	LastDefaultDate *string    `json:"last_default_date"`
	MatchConfidence Confidence `json:"match_confidence"`
	TradeLines      *int       `json:"trade_lines"`
}
