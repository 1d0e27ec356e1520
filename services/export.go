package services

import (
	"bytes"
	"fmt"

	"trace_app_go/models"

	"github.com/xuri/excelize/v2"
)

const (
	// XLSXContentType is the MIME type of workbook downloads
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// ComplaintsSheet is the name of the single sheet in the export
	ComplaintsSheet = "Complaints"
)

var exportHeaders = []string{
	"Case ID", "Name", "Contact", "Area", "Incident Date", "Incident Place",
	"Description", "Status", "Officer Assigned", "Station", "Phone", "Filed At",
}

// BuildComplaintsWorkbook writes all complaints into an XLSX workbook, one row per case
func BuildComplaintsWorkbook(complaints []models.Complaint) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ComplaintsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ComplaintsSheet, cell, header)
	}

	for i, c := range complaints {
		row := i + 2
		values := []interface{}{
			c.ID, c.Name, c.Contact, c.Area, c.IncidentDate, c.IncidentPlace,
			c.Description, c.Status, c.OfficerAssigned, c.Station, c.Phone,
			c.CreatedAt.Format(ReportDateLayout),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(ComplaintsSheet, cell, v)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(ComplaintsSheet, "A1", "L1", headerStyle)
	f.SetColWidth(ComplaintsSheet, "B", "L", 20)
	f.SetColWidth(ComplaintsSheet, "G", "G", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}
