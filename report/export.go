package report

import (
	"bytes"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bitmark-inc/cityworks-api/schema"
)

const (
	summarySheet  = "Summary"
	maxSheetName  = 31
	sheetTimeForm = "2006-01-02 15:04"
)

var sectionColumns = []string{"Key", "Label", "Value"}

// Export writes a report into a workbook with a summary sheet followed by
// one sheet per section
func Export(report *schema.Report, generatedAt time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)

	summary := [][]interface{}{
		{"Title", report.Title},
		{"Type", string(report.Type)},
		{"From", formatTime(report.Parameters.From)},
		{"To", formatTime(report.Parameters.To)},
		{"Generated at", formatTime(generatedAt)},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	for _, s := range report.Sections {
		name := sheetName(s.Name)
		f.NewSheet(name)

		rows := make([][]interface{}, 0, len(s.Metrics)+1)
		header := make([]interface{}, 0, len(sectionColumns))
		for _, c := range sectionColumns {
			header = append(header, c)
		}
		rows = append(rows, header)
		for _, m := range s.Metrics {
			rows = append(rows, []interface{}{m.Key, m.Label, m.Value})
		}

		if err := writeRows(f, name, rows); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	return f.WriteToBuffer()
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, values := range rows {
		for c, v := range values {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, axis, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func sheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sheetTimeForm)
}
