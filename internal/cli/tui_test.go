package cli

import (
	"testing"

	"github.com/ygorazambuja/pubspec-platform/pkg/analysis"
	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

func testModel() reportModel {
	return reportModel{
		rows: []reportRow{
			{pkg: analysis.Package{Name: "provider", Verdict: compat.Verdict{Status: compat.StatusPartial}}},
			{pkg: analysis.Package{Name: "http", Verdict: compat.Verdict{Status: compat.StatusFull}}},
			{pkg: analysis.Package{Name: "broken", Verdict: compat.Verdict{Status: compat.StatusNone}}, dev: true},
		},
		height: 15,
	}
}

func TestReportModel_VisibleDefaultOrder(t *testing.T) {
	rows := testModel().visible()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Manifest order untouched by default.
	if rows[0].pkg.Name != "provider" || rows[2].pkg.Name != "broken" {
		t.Errorf("unexpected default order: %s..%s", rows[0].pkg.Name, rows[2].pkg.Name)
	}
}

func TestReportModel_FilterByStatus(t *testing.T) {
	m := testModel()
	m.filterIdx = 1 // full

	rows := m.visible()
	if len(rows) != 1 || rows[0].pkg.Name != "http" {
		t.Errorf("filtered rows = %v", rows)
	}
}

func TestReportModel_SortByName(t *testing.T) {
	m := testModel()
	m.sortMode = sortName

	rows := m.visible()
	want := []string{"broken", "http", "provider"}
	for i, name := range want {
		if rows[i].pkg.Name != name {
			t.Fatalf("row %d = %q, want %q", i, rows[i].pkg.Name, name)
		}
	}
}

func TestReportModel_SortByStatusProblemsFirst(t *testing.T) {
	m := testModel()
	m.sortMode = sortStatus

	rows := m.visible()
	if rows[0].pkg.Status != compat.StatusNone {
		t.Errorf("first row status = %q, want none", rows[0].pkg.Status)
	}
	if rows[2].pkg.Status != compat.StatusFull {
		t.Errorf("last row status = %q, want full", rows[2].pkg.Status)
	}
}

func TestMissingLine(t *testing.T) {
	tests := []struct {
		name string
		v    compat.Verdict
		want string
	}{
		{"nothing missing", compat.Verdict{Status: compat.StatusFull}, ""},
		{"platforms only", compat.Verdict{MissingPlatforms: []string{"Linux", "macOS"}}, "Linux, macOS"},
		{"sdks only", compat.Verdict{MissingSDKs: []string{"Flutter"}}, "Flutter"},
		{
			"both dimensions",
			compat.Verdict{MissingPlatforms: []string{"Web"}, MissingSDKs: []string{"Flutter"}},
			"Web · Flutter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := missingLine(tt.v); got != tt.want {
				t.Errorf("missingLine = %q, want %q", got, tt.want)
			}
		})
	}
}
