package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/urithi-ke/urithi/internal/model"
)

// Column names recognized in the header row, normalized to lower case with
// underscores. These match the columns of the original spreadsheet.
const (
	colCulturalGroup        = "cultural_group"
	colCategory             = "category"
	colTitle                = "title"
	colDescription          = "description"
	colCulturalSignificance = "cultural_significance"
	colRegion               = "region"
)

// ParseCSV reads fact rows from CSV data. The first record is a header; the
// six known columns are matched by normalized name and may appear in any
// order. Unknown columns are ignored, missing ones read as empty.
func ParseCSV(r io.Reader) ([]model.RawFact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows tolerated, missing cells read empty
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return []model.RawFact{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeColumn(name)] = i
	}

	var rows []model.RawFact
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rows = append(rows, model.RawFact{
			CulturalGroup:        cell(colCulturalGroup),
			Category:             cell(colCategory),
			Title:                cell(colTitle),
			Description:          cell(colDescription),
			CulturalSignificance: cell(colCulturalSignificance),
			Region:               cell(colRegion),
		})
	}

	return rows, nil
}

// normalizeColumn maps "Cultural Group", "Cultural_Group" and
// "cultural_group" to the same name.
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}
