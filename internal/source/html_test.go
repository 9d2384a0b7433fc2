package source

import (
	"strings"
	"testing"
)

func TestParseHTMLTable(t *testing.T) {
	doc := `
	<html><body>
	<h1>Kenyan Culture</h1>
	<table>
		<tr><th>Cultural Group</th><th>Category</th><th>Title</th><th>Description</th><th>Region</th></tr>
		<tr><td>Maasai</td><td>Ceremony</td><td>Eunoto</td><td>Warrior graduation.</td><td>Rift Valley</td></tr>
		<tr><td>Kikuyu</td><td>Food</td><td>Githeri</td><td>Maize and beans.</td><td></td></tr>
	</table>
	</body></html>`

	rows, err := ParseHTMLTable(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseHTMLTable failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CulturalGroup != "Maasai" || rows[0].Description != "Warrior graduation." {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Region != "" {
		t.Errorf("expected empty region, got %q", rows[1].Region)
	}
}

func TestParseHTMLTable_NoTable(t *testing.T) {
	rows, err := ParseHTMLTable(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseHTMLTable failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows without a table, got %d", len(rows))
	}
}

func TestParseHTMLTable_NestedMarkup(t *testing.T) {
	doc := `
	<table>
		<tr><th>Title</th><th>Description</th></tr>
		<tr><td><b>Eunoto</b></td><td>Marks <i>warrior</i> graduation.<script>alert(1)</script></td></tr>
	</table>`

	rows, err := ParseHTMLTable(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseHTMLTable failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Title != "Eunoto" {
		t.Errorf("expected nested text collected, got %q", rows[0].Title)
	}
	if strings.Contains(rows[0].Description, "alert") {
		t.Errorf("expected script content skipped, got %q", rows[0].Description)
	}
}
