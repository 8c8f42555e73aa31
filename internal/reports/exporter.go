package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/sharath018/event-management-backend/internal/models"
)

// ReportExporter renders a participant report into a downloadable file.
type ReportExporter interface {
	Export(format string, report ParticipantReport) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

// Export returns the file bytes, filename and content type for the given format.
// An empty format means excel.
func (e *reportExporter) Export(format string, report ParticipantReport) ([]byte, string, string, error) {
	switch format {
	case "", FormatExcel, "xlsx":
		data, err := ParticipantsExcel(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, Filename(report.Event.Name, report.GeneratedAt, "xlsx"), MimeExcel, nil

	case FormatPDF:
		data, err := ParticipantsPDF(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, Filename(report.Event.Name, report.GeneratedAt, "pdf"), MimePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for participants: %s", format)
	}
}

const participantsSheet = "Participants"

var participantHeaders = []string{"S.No", "Name", "Email", "Phone", "Status", "Registration Date"}

var columnWidths = []float64{8, 25, 30, 15, 12, 20}

// statusColors maps a status to its fill and font colour.
var statusColors = map[string][2]string{
	models.StatusConfirmed: {"#C6EFCE", "#006100"},
	models.StatusPending:   {"#FFEB9C", "#9C6500"},
	models.StatusRejected:  {"#FFC7CE", "#9C0006"},
}

const (
	headerRow    = 4
	firstDataRow = 5
)

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// sheetWriter records the first error from a sequence of excelize calls.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, v interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, v)
}

func (w *sheetWriter) style(fromCol, toCol, row, styleID int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}

func (w *sheetWriter) newStyle(s *excelize.Style) int {
	if w.err != nil {
		return 0
	}
	id, err := w.f.NewStyle(s)
	w.err = err
	return id
}

// ParticipantsExcel renders the participants workbook.
func ParticipantsExcel(report ParticipantReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", participantsSheet); err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f, sheet: participantsSheet}
	cols := len(participantHeaders)
	ev := report.Event

	// Title block
	titleStyle := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	infoStyle := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if w.err == nil {
		w.err = f.MergeCell(participantsSheet, "A1", "F1")
	}
	if w.err == nil {
		w.err = f.MergeCell(participantsSheet, "A2", "F2")
	}
	w.set(1, 1, ev.Name+" - Participants List")
	w.style(1, cols, 1, titleStyle)
	w.set(1, 2, fmt.Sprintf("Event Date: %s | Total Capacity: %d", ev.Date, ev.Capacity))
	w.style(1, cols, 2, infoStyle)

	// Header
	headerStyle := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      solidFill("#667EEA"),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, h := range participantHeaders {
		w.set(i+1, headerRow, h)
	}
	w.style(1, cols, headerRow, headerStyle)

	// Rows
	altStyle := w.newStyle(&excelize.Style{Fill: solidFill("#F5F5F5")})
	statusStyles := make(map[string]int, len(statusColors))
	for _, status := range models.Statuses {
		c := statusColors[status]
		statusStyles[status] = w.newStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: c[1]},
			Fill:      solidFill(c[0]),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
	}

	for i, r := range report.Registrations {
		row := firstDataRow + i
		w.set(1, row, i+1)
		w.set(2, row, r.Name)
		w.set(3, row, r.Email)
		w.set(4, row, r.Phone)
		w.set(5, row, strings.ToUpper(r.Status))
		w.set(6, row, r.RegisteredAt.Format(models.DateLayout))

		if i%2 == 1 {
			w.style(1, cols, row, altStyle)
		}
		if id, ok := statusStyles[r.Status]; ok {
			w.style(5, 5, row, id)
		}
	}

	// Summary
	sum := Summarize(report.Registrations)
	summaryRow := firstDataRow + len(report.Registrations) + 1
	summaryStyle := w.newStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solidFill("#E2EFDA"),
	})
	w.set(2, summaryRow, fmt.Sprintf("Total Participants: %d", sum.Total))
	w.set(3, summaryRow, fmt.Sprintf("Confirmed: %d", sum.Confirmed))
	w.set(4, summaryRow, fmt.Sprintf("Pending: %d", sum.Pending))
	w.set(5, summaryRow, fmt.Sprintf("Rejected: %d", sum.Rejected))
	w.style(2, 5, summaryRow, summaryStyle)

	for i, width := range columnWidths {
		if w.err != nil {
			break
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		w.err = f.SetColWidth(participantsSheet, col, col, width)
	}
	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParticipantsPDF renders the same table as a landscape A4 document.
func ParticipantsPDF(report ParticipantReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	ev := report.Event

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(ev.Name+" - Participants List"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Event Date: %s | Total Capacity: %d", ev.Date, ev.Capacity)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	widths := []float64{15, 60, 75, 35, 30, 40}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(0x66, 0x7E, 0xEA)
	pdf.SetTextColor(0xFF, 0xFF, 0xFF)
	for i, h := range participantHeaders {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, r := range report.Registrations {
		fill := i%2 == 1
		pdf.SetFillColor(0xF5, 0xF5, 0xF5)
		values := []string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Email,
			r.Phone,
			strings.ToUpper(r.Status),
			r.RegisteredAt.Format(models.DateLayout),
		}
		for j, v := range values {
			pdf.CellFormat(widths[j], 7, tr(v), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	sum := Summarize(report.Registrations)
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(0xE2, 0xEF, 0xDA)
	summary := []string{
		fmt.Sprintf("Total Participants: %d", sum.Total),
		fmt.Sprintf("Confirmed: %d", sum.Confirmed),
		fmt.Sprintf("Pending: %d", sum.Pending),
		fmt.Sprintf("Rejected: %d", sum.Rejected),
	}
	for _, s := range summary {
		pdf.CellFormat(60, 8, s, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
