package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "momentum/internal/errors"
)

// LoadRecords reads a tabular price file and returns it as a RecordSet.
// The format is dispatched on the file extension: ".csv" and ".xlsx" are
// supported. rename maps source column headers to canonical names before
// interpretation; after renaming a "Date" column must be present.
func LoadRecords(path string, rename map[string]string) (*RecordSet, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".pkl":
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("pickle file %s is not readable here, convert it to csv or xlsx", filepath.Base(path)), nil)
	default:
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("unsupported file extension %q", ext), nil)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("%s has no data rows", filepath.Base(path)), nil)
	}

	return buildRecordSet(rows, rename, filepath.Base(path))
}

// readCSV reads all records from a CSV file, stripping a UTF-8 BOM if present
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("open CSV file", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewStorageError("read CSV file", err)
	}
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewStorageError("parse CSV records", err)
	}
	return records, nil
}

// readXLSX reads all rows from the first sheet of a workbook
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewStorageError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("read sheet %q", sheets[0]), err)
	}
	return rows, nil
}

// buildRecordSet applies header renames and converts rows into dated series
func buildRecordSet(rows [][]string, rename map[string]string, source string) (*RecordSet, error) {
	header := make([]string, len(rows[0]))
	dateCol := -1
	for i, col := range rows[0] {
		name := strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if renamed, ok := rename[name]; ok {
			name = renamed
		}
		header[i] = name
		if name == "Date" {
			dateCol = i
		}
	}
	if dateCol == -1 {
		return nil, apperrors.NewNotFoundError("Date column").WithContext("header", rows[0])
	}

	rs := &RecordSet{Columns: make(map[string][]float64)}
	for i, name := range header {
		if i == dateCol {
			continue
		}
		rs.Order = append(rs.Order, name)
	}

	for lineNum, row := range rows[1:] {
		if len(row) <= dateCol || strings.TrimSpace(row[dateCol]) == "" {
			continue
		}

		date, err := parseDate(strings.TrimSpace(row[dateCol]))
		if err != nil {
			slog.Warn("skipping row with unparseable date",
				slog.String("source", source),
				slog.Int("line", lineNum+2),
				slog.String("error", err.Error()))
			continue
		}

		rs.Dates = append(rs.Dates, date)
		for i, name := range header {
			if i == dateCol {
				continue
			}
			value := math.NaN()
			if i < len(row) {
				if v, err := parseNumber(row[i]); err == nil {
					value = v
				}
			}
			rs.Columns[name] = append(rs.Columns[name], value)
		}
	}

	if len(rs.Dates) == 0 {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("%s contains no rows with a parseable date", source), nil)
	}

	return rs, nil
}

// parseDate attempts to parse date strings in multiple formats
func parseDate(dateStr string) (time.Time, error) {
	dateFormats := []string{
		"2006-01-02",          // ISO format
		"01/02/2006",          // US format
		"02/01/2006",          // European format
		"2006/01/02",          // Alternative ISO
		"2006-01-02 15:04:05", // With time
		"1/2/06",              // Short US, as Excel emits it
	}

	for _, format := range dateFormats {
		if date, err := time.Parse(format, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// parseNumber parses a numeric cell, tolerating thousands separators
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(s, 64)
}
