package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"ChartSentinel/internal/model"
	"ChartSentinel/internal/pattern"
)

// csvHeader is the stable export contract: consumers depend on these
// columns in this order.
var csvHeader = []string{"Ticker", "Pattern", "Date", "Price"}

// WriteCSV serializes one ticker's detection result as one row per match.
// Rows are grouped by pattern in catalog order, each pattern's matches in
// chronological order.
func WriteCSV(w io.Writer, ticker string, result model.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writeRows(cw, ticker, result); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes results for several tickers to a single file,
// tickers in lexical order.
func WriteCSVFile(path string, results map[string]model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	tickers := make([]string, 0, len(results))
	for t := range results {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	for _, ticker := range tickers {
		if err := writeRows(cw, ticker, results[ticker]); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeRows(cw *csv.Writer, ticker string, result model.Result) error {
	for _, kind := range pattern.Kinds() {
		matches, ok := result[kind]
		if !ok {
			continue
		}
		for _, m := range matches {
			row := []string{
				ticker,
				pattern.Label(kind),
				m.Time.Format("2006-01-02"),
				fmt.Sprintf("%.2f", m.Price),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	return nil
}
