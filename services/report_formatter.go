package services

import (
	"fmt"
	"strings"
	"time"
)

// ReportDateLayout is the layout of the "Date Filed" line
const ReportDateLayout = "2006-01-02 15:04:05"

// ReportInput holds the citizen-supplied fields printed on the report
type ReportInput struct {
	Name          string
	Contact       string
	Area          string
	IncidentDate  string
	IncidentPlace string
	Description   string
}

const reportTemplate = `
Formal Complaint Report
-----------------------
Complainant Name: %s
Contact Number: %s
Residential Area: %s

Incident Date: %s
Incident Place: %s

Complaint Description:
%s

Identified Persons: %s
Possible Locations: %s

Date Filed: %s
Signature: ______________________
`

// FormatComplaint renders the printable complaint report
func FormatComplaint(in ReportInput, entities Entities, filedAt time.Time) string {
	return fmt.Sprintf(reportTemplate,
		in.Name,
		in.Contact,
		in.Area,
		in.IncidentDate,
		in.IncidentPlace,
		in.Description,
		joinOrNA(entities.Persons),
		joinOrNA(entities.Locations),
		filedAt.Format(ReportDateLayout),
	)
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

// ReportFileName is the download name for a complaint report
func ReportFileName(id uint, ext string) string {
	return fmt.Sprintf("complaint_%d.%s", id, ext)
}
