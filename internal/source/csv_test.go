package source

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	data := `Cultural_Group,Category,Title,Description,Cultural_Significance,Region
Maasai,Ceremony,Eunoto,Eunoto marks warrior graduation.,Transition to senior status.,Rift Valley
Kikuyu,Food,Githeri,Githeri is a maize and beans dish.,,
`

	rows, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].CulturalGroup != "Maasai" || rows[0].Region != "Rift Valley" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].CulturalSignificance != "" || rows[1].Region != "" {
		t.Errorf("expected empty optional fields, got %+v", rows[1])
	}
}

func TestParseCSV_ColumnOrderAndCase(t *testing.T) {
	data := `title,region,cultural group,description,category
Nyatiti,Nyanza,Luo,An eight-stringed lyre.,Music
`

	rows, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].CulturalGroup != "Luo" || rows[0].Title != "Nyatiti" || rows[0].Category != "Music" {
		t.Errorf("columns not matched by name: %+v", rows[0])
	}
}

func TestParseCSV_RaggedRows(t *testing.T) {
	data := `Cultural_Group,Category,Title,Description
Kamba,Craft
`

	rows, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Title != "" || rows[0].Description != "" {
		t.Errorf("expected missing cells to read empty, got %+v", rows[0])
	}
}

func TestParseCSV_Empty(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseCSV failed on empty input: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
