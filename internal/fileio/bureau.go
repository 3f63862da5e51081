package fileio

import (
	"os"

	"company-lookup/internal/lookup/model"
	"company-lookup/internal/utils"
)

// LoadBureau reads the credit-bureau extract from a tabular file
// (csv/xlsx/xls). Dates are normalized to ISO at load time; cells that do
// not parse degrade to absent values rather than failing the load.
func LoadBureau(path string) ([]model.BureauRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadTable(f, path, 1)
	if err != nil {
		return nil, err
	}

	out := make([]model.BureauRecord, 0, len(rows))
	for _, rec := range rows {
		domain := rec[resolveColumn(rec, "domain|website")]
		if domain == "" {
			continue
		}
		out = append(out, model.BureauRecord{
			Domain:          domain,
			CreditScore:     utils.ParseInt(rec[resolveColumn(rec, "credit_score|score")]),
			LastDefaultDate: normalizeDate(rec[resolveColumn(rec, "last_default_date|default_date")]),
			TradeLines:      utils.ParseInt(rec[resolveColumn(rec, "trade_lines|tradelines")]),
		})
	}
	return out, nil
}
