//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// ReportFormat is an export format accepted by the report endpoint.
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
)

// ParseReportFormat normalizes user input; ok is false for unknown formats.
func ParseReportFormat(raw string) (ReportFormat, bool) {
	f := ReportFormat(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case ReportFormatPDF, ReportFormatExcel:
		return f, true
	default:
		return "", false
	}
}

// Filename is the download name the browser saves the report as.
func (f ReportFormat) Filename() string {
	if f == ReportFormatExcel {
		return "report.xlsx"
	}
	return "report.pdf"
}

// ContentType is used when the API response does not name one.
func (f ReportFormat) ContentType() string {
	if f == ReportFormatExcel {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// ReportFile is a downloaded report blob.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
