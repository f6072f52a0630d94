package report

import (
	"encoding/json"
	"fmt"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
)

func marshalReport(rep domain.Report) ([]byte, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report %s: %w", rep.ID, err)
	}
	return data, nil
}

func unmarshalReports(docs []db.Document) ([]domain.Report, error) {
	reports := make([]domain.Report, 0, len(docs))
	for _, doc := range docs {
		var rep domain.Report
		if err := json.Unmarshal(doc.JSON, &rep); err != nil {
			return nil, fmt.Errorf("unmarshal report %s: %w", doc.Key, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
