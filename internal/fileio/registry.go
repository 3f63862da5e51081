package fileio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"company-lookup/internal/lookup/model"
)

// registryJSON mirrors the registry export shape: a flat company entry with
// a nested address object.
type registryJSON struct {
	Name          string `json:"name"`
	CompanyNumber string `json:"company_number"`
	Domain        string `json:"domain"`
	Address       struct {
		Street   string `json:"street"`
		City     string `json:"city"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// LoadRegistry reads the company registry from a JSON export or a tabular
// file (csv/xlsx/xls). The result is handed to the lookup service as-is and
// never mutated afterwards.
func LoadRegistry(path string) ([]model.RegistryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var raw []registryJSON
		if err := json.NewDecoder(f).Decode(&raw); err != nil {
			return nil, err
		}
		out := make([]model.RegistryRecord, 0, len(raw))
		for _, r := range raw {
			out = append(out, model.RegistryRecord{
				CompanyNumber: r.CompanyNumber,
				Name:          r.Name,
				Street:        r.Address.Street,
				City:          r.Address.City,
				Postcode:      r.Address.Postcode,
				Domain:        r.Domain,
			})
		}
		return out, nil
	}

	rows, err := ReadTable(f, path, 1)
	if err != nil {
		return nil, err
	}
	out := make([]model.RegistryRecord, 0, len(rows))
	for _, rec := range rows {
		name := rec[resolveColumn(rec, "name|company_name")]
		if name == "" {
			continue
		}
		out = append(out, model.RegistryRecord{
			CompanyNumber: rec[resolveColumn(rec, "company_number|number")],
			Name:          name,
			Street:        rec[resolveColumn(rec, "street|address_line_1")],
			City:          rec[resolveColumn(rec, "city|town")],
			Postcode:      rec[resolveColumn(rec, "postcode|post_code")],
			Domain:        rec[resolveColumn(rec, "domain|website")],
		})
	}
	return out, nil
}
