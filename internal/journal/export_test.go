package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

func TestExportCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	want := "Date,Asset,Side,Status,Net P&L,Contracts,Duration,Setup,Rating,Remarks"
	if strings.TrimRight(first, "\r") != want {
		t.Errorf("header = %q, want %q", first, want)
	}
}

func TestExportCSVRowValues(t *testing.T) {
	trades := []models.Trade{
		{
			Date:      "03/15/2026",
			Symbol:    "ES",
			Side:      models.SideLong,
			Status:    models.StatusWin,
			NetPL:     250.5,
			Contracts: 2,
			Duration:  "32m",
			Setup:     "Breakout",
			Rating:    4,
			Remarks:   "clean entry",
		},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, trades); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}

	row := records[1]
	want := []string{"03/15/2026", "ES", "LONG", "WIN", "250.50", "2", "32m", "Breakout", "4", "clean entry"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %d = %q, want %q", i, row[i], w)
		}
	}
}

func TestExportCSVPnLFixedTwoDecimals(t *testing.T) {
	trades := []models.Trade{
		{Date: "03/15/2026", Symbol: "ES", NetPL: -120},
		{Date: "03/15/2026", Symbol: "NQ", NetPL: 0.125},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, trades); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "-120.00") {
		t.Errorf("output should contain -120.00:\n%s", out)
	}
	if !strings.Contains(out, "0.13") && !strings.Contains(out, "0.12") {
		t.Errorf("output should contain 0.125 rounded to two decimals:\n%s", out)
	}
}

func TestExportCSVQuotesFieldsWithCommasAndQuotes(t *testing.T) {
	trades := []models.Trade{
		{
			Date:    "03/15/2026",
			Symbol:  "ES",
			Setup:   `the "big" breakout`,
			Remarks: "choppy, but held",
		},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, trades); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	// A standard CSV reader must recover the original text, which means
	// quotes were doubled and comma fields wrapped.
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	row := records[1]
	if row[7] != `the "big" breakout` {
		t.Errorf("setup round-trip = %q", row[7])
	}
	if row[9] != "choppy, but held" {
		t.Errorf("remarks round-trip = %q", row[9])
	}
}

func TestExportCSVFile(t *testing.T) {
	path := t.TempDir() + "/journal.csv"

	trades := []models.Trade{
		{Date: "03/15/2026", Symbol: "ES", Side: models.SideLong, Status: models.StatusWin, NetPL: 75},
	}
	if err := ExportCSVFile(path, trades); err != nil {
		t.Fatalf("ExportCSVFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("exported file has %d lines, want header + 1 row", len(lines))
	}
}
