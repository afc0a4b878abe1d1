package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/lokalku/lokalku/internal/domain"
)

// Summary is the export payload for one business's sales history.
type Summary struct {
	BusinessName string
	GeneratedAt  time.Time
	Reports      []domain.SalesReport
	TotalRevenue float64
	TotalUnits   int
}

// RenderPDF renders the summary as a one-page PDF report and returns the
// document bytes plus a download filename.
func RenderPDF(s *Summary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Penjualan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LAPORAN PENJUALAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Usaha    : "+s.BusinessName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Dibuat   : "+s.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 8, "Periode", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Pendapatan", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Unit Terjual", "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 8, "Catatan", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, r := range s.Reports {
		pdf.CellFormat(30, 7, r.Period, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, formatRupiah(r.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", r.UnitsSold), "1", 0, "R", false, 0, "")
		pdf.CellFormat(85, 7, truncate(r.Notes, 50), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Pendapatan : "+formatRupiah(s.TotalRevenue))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Unit       : %d", s.TotalUnits))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("LAPORAN_%s_%s.pdf",
		safeFilenamePart(s.BusinessName), s.GeneratedAt.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func formatRupiah(v float64) string {
	if v <= 0 {
		return "Rp 0"
	}
	s := fmt.Sprintf("%.0f", v)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, '.')
		}
	}
	return "Rp " + string(out)
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
