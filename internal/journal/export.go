package journal

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// csvRow mirrors the journal's export layout: one row per trade, P&L fixed
// to two decimals, quotes escaped by doubling per RFC 4180.
type csvRow struct {
	Date      string `csv:"Date"`
	Asset     string `csv:"Asset"`
	Side      string `csv:"Side"`
	Status    string `csv:"Status"`
	NetPL     string `csv:"Net P&L"`
	Contracts int    `csv:"Contracts"`
	Duration  string `csv:"Duration"`
	Setup     string `csv:"Setup"`
	Rating    int    `csv:"Rating"`
	Remarks   string `csv:"Remarks"`
}

// ExportCSV serializes the collection to delimited text. The engine side of
// the export boundary: callers decide where the bytes go.
func ExportCSV(w io.Writer, trades []models.Trade) error {
	rows := make([]csvRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, csvRow{
			Date:      t.Date,
			Asset:     t.Symbol,
			Side:      string(t.Side),
			Status:    string(t.Status),
			NetPL:     fmt.Sprintf("%.2f", t.NetPL),
			Contracts: t.Contracts,
			Duration:  t.Duration,
			Setup:     t.Setup,
			Rating:    t.Rating,
			Remarks:   t.Remarks,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// ExportCSVFile writes the collection to a file, creating or truncating it.
func ExportCSVFile(path string, trades []models.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := ExportCSV(f, trades); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
