package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestExport(t *testing.T) {
	report := &schema.Report{
		Title: "Weekly infrastructure",
		Type:  schema.ReportInfrastructure,
		Parameters: schema.ReportParameters{
			From: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2022, 5, 8, 0, 0, 0, 0, time.UTC),
		},
		Sections: []schema.ReportSection{
			{
				Name:  "issues_by_status",
				Title: "Issues by status",
				Metrics: []schema.ReportMetric{
					{Key: "reported", Label: "Reported", Value: 4},
					{Key: "resolved", Label: "Resolved", Value: 2},
				},
			},
			{
				Name:    "a_section_name_longer_than_the_sheet_limit",
				Metrics: []schema.ReportMetric{},
			},
		},
	}

	buf, err := Export(report, time.Date(2022, 5, 8, 1, 2, 0, 0, time.UTC))
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		summarySheet,
		"issues_by_status",
		"a_section_name_longer_than_the_",
	}, f.GetSheetList())

	summary, err := f.GetRows(summarySheet)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Title", "Weekly infrastructure"}, summary[0])
	assert.Equal(t, []string{"From", "2022-05-01 00:00"}, summary[2])
	assert.Equal(t, []string{"Generated at", "2022-05-08 01:02"}, summary[4])

	rows, err := f.GetRows("issues_by_status")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Key", "Label", "Value"}, rows[0])
	assert.Equal(t, []string{"reported", "Reported", "4"}, rows[1])
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "In progress", bucketLabel("in_progress"))
	assert.Equal(t, "Field worker", bucketLabel("field_worker"))
	assert.Equal(t, "E", bucketLabel("E"))
	assert.Equal(t, "", bucketLabel(""))
}
