package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeTemp(t, "companies_house.json", `[
		{
			"name": "Robinson PLC",
			"company_number": "4958777",
			"domain": "robinson.example",
			"address": {"street": "928 Jodie land", "city": "Port Colin", "postcode": "L7A 5EU"}
		},
		{
			"name": "Hughes Ltd",
			"company_number": "1234567",
			"address": {"street": "1 Elm Street", "city": "Manchester", "postcode": "M1 1AA"}
		}
	]`)

	records, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "4958777", records[0].CompanyNumber)
	assert.Equal(t, "Robinson PLC", records[0].Name)
	assert.Equal(t, "928 Jodie land", records[0].Street)
	assert.Equal(t, "Port Colin", records[0].City)
	assert.Equal(t, "L7A 5EU", records[0].Postcode)
	assert.Equal(t, "robinson.example", records[0].Domain)
	assert.Equal(t, "", records[1].Domain, "domain column is optional")
}

func TestLoadRegistryCSV(t *testing.T) {
	path := writeTemp(t, "registry.csv",
		"name,company_number,street,city,postcode\n"+
			"Robinson PLC,4958777,928 Jodie land,Port Colin,L7A 5EU\n"+
			",999,skipped because nameless,,\n")

	records, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Robinson PLC", records[0].Name)
	assert.Equal(t, "L7A 5EU", records[0].Postcode)
}

func TestLoadBureauCSV(t *testing.T) {
	path := writeTemp(t, "credit_bureau.csv",
		"domain,credit_score,last_default_date,trade_lines\n"+
			"hughes.com,887,05-Mar-2020,10\n"+
			"empty.example,,,\n"+
			",42,2020-01-01,1\n")

	records, err := LoadBureau(path)
	require.NoError(t, err)
	require.Len(t, records, 2, "rows without a domain are dropped")

	require.NotNil(t, records[0].CreditScore)
	assert.Equal(t, 887, *records[0].CreditScore)
	require.NotNil(t, records[0].LastDefaultDate)
	assert.Equal(t, "2020-03-05", *records[0].LastDefaultDate)
	require.NotNil(t, records[0].TradeLines)
	assert.Equal(t, 10, *records[0].TradeLines)

	assert.Nil(t, records[1].CreditScore)
	assert.Nil(t, records[1].LastDefaultDate)
	assert.Nil(t, records[1].TradeLines)
}

func TestLoadBureauXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_bureau.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"domain", "credit_score", "last_default_date", "trade_lines"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"hughes.com", "887", "2020-03-05", "10"}))
	require.NoError(t, f.SaveAs(path))

	records, err := LoadBureau(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hughes.com", records[0].Domain)
	require.NotNil(t, records[0].CreditScore)
	assert.Equal(t, 887, *records[0].CreditScore)
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string // "" means nil expected
	}{
		{"25-Jan-2025", "2025-01-25"},
		{"05-Mar-2020", "2020-03-05"},
		{"January 25, 2025", "2025-01-25"},
		{"2025-01-25", "2025-01-25"},
		{"not a date", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got := normalizeDate(tc.in)
		if tc.want == "" {
			assert.Nil(t, got, "normalizeDate(%q)", tc.in)
		} else {
			require.NotNil(t, got, "normalizeDate(%q)", tc.in)
			assert.Equal(t, tc.want, *got)
		}
	}
}

func TestResolveColumn(t *testing.T) {
	rec := map[string]string{"Credit Score": "887", "domain": "hughes.com"}

	assert.Equal(t, "domain", resolveColumn(rec, "domain|website"))
	assert.Equal(t, "Credit Score", resolveColumn(rec, "credit_score|score"))
	assert.Equal(t, "", resolveColumn(rec, "trade_lines"))
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	_, err := ReadTable(nil, "data.parquet", 1)
	assert.Error(t, err)
}
