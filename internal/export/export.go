// Package export renders expense rows as flat tabular documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/model"
)

// Header is the first row of every export.
var Header = []string{"Date", "User", "Category", "Amount", "Description"}

// Format selects the document type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat falls back to CSV for anything but xlsx.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatXLSX)) {
		return FormatXLSX
	}
	return FormatCSV
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Filename returns the download name for an export produced at t.
func (f Format) Filename(t time.Time) string {
	return fmt.Sprintf("Expenses_Export_%s.%s", t.Format("20060102"), f)
}

// Row is one exported expense with the owner's display name resolved.
type Row struct {
	Date        time.Time
	User        string
	Category    string
	Amount      decimal.Decimal
	Description string
}

// Cells returns the row's textual cells in header order.
func (r Row) Cells() []string {
	return []string{
		r.Date.Format("2006-01-02"),
		r.User,
		r.Category,
		r.Amount.StringFixed(2),
		r.Description,
	}
}

// RowsFromExpenses converts expenses with a preloaded User into rows,
// keeping the given order. A missing user renders as an empty name.
func RowsFromExpenses(expenses []model.Expense) []Row {
	rows := make([]Row, 0, len(expenses))
	for _, e := range expenses {
		name := ""
		if e.User != nil {
			name = e.User.Name
		}
		rows = append(rows, Row{
			Date:        e.Date,
			User:        name,
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	return rows
}

// WriteCSV writes the header and one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Cells()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render produces the complete document in the given format.
func Render(format Format, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if format == FormatXLSX {
		err = WriteXLSX(&buf, rows)
	} else {
		err = WriteCSV(&buf, rows)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
