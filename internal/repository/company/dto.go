package company

import (
	"encoding/json"
	"fmt"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
)

func marshalCompany(c domain.Company) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal company %s: %w", c.ID, err)
	}
	return data, nil
}

func unmarshalCompanies(docs []db.Document) ([]domain.Company, error) {
	companies := make([]domain.Company, 0, len(docs))
	for _, doc := range docs {
		var c domain.Company
		if err := json.Unmarshal(doc.JSON, &c); err != nil {
			return nil, fmt.Errorf("unmarshal company %s: %w", doc.Key, err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}
