// ABOUTME: XLSX article store backed by excelize
// ABOUTME: Header row plus one row per record on Sheet1; saves go through a temp file and rename

package excel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet records are written to
const SheetName = "Sheet1"

// maxCellChars is the XLSX per-cell character limit
const maxCellChars = 32767

// Store reads and writes articles in an XLSX workbook
type Store struct {
	path string
}

// NewStore creates a store for the workbook at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the workbook location
func (s *Store) Path() string {
	return s.path
}

// Load reads every record. A missing workbook is an empty store. Rows are
// matched to fields by header name, so column order in the file is free.
func (s *Store) Load(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if !hasColumn(header, domain.ColumnURL) {
		return nil, &apperrors.StoreLoadError{
			Path: s.path,
			Err:  fmt.Errorf("sheet %s has no %q column", sheet, domain.ColumnURL),
		}
	}

	records := make([]domain.Article, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, domain.ArticleFromRow(header, row))
	}
	return records, nil
}

// Save replaces the workbook with the given records. The previous file is
// left intact if writing fails.
func (s *Store) Save(ctx context.Context, records []domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, domain.Columns); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeRow(f, i+2, record.Row()); err != nil {
			return fmt.Errorf("write record %s: %w", record.URL, err)
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".articles-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp workbook: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close workbook: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = truncateCell(v)
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}

// truncateCell keeps a value within the XLSX cell limit
func truncateCell(value string) string {
	runes := []rune(value)
	if len(runes) <= maxCellChars {
		return value
	}
	return string(runes[:maxCellChars])
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
