package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/lunaalencar/juridico-api/internal/repository"
)

// ReportService renders ledger and receivables data into downloadable files.
type ReportService struct {
	ledgerRepo    repository.LedgerRepository
	collectionSvc *CollectionService
}

func NewReportService(ledgerRepo repository.LedgerRepository, collectionSvc *CollectionService) *ReportService {
	return &ReportService{
		ledgerRepo:    ledgerRepo,
		collectionSvc: collectionSvc,
	}
}

// LedgerCSV exports every cash movement in [from, to) as CSV.
func (s *ReportService) LedgerCSV(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	entries, err := s.ledgerRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Relatório de Caixa", fmt.Sprintf("%s a %s", from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))})
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Data", "Tipo", "Descrição", "Valor", "Forma", "Origem"})

	for i := range entries {
		e := &entries[i]
		_ = writer.Write([]string{
			e.EntryDate.Format("2006-01-02"),
			e.Direction,
			e.Description,
			e.Amount.StringFixed(2),
			e.PaymentMethod,
			e.EntryType,
		})
	}

	inflow, outflow, balance := SummarizeEntries(entries)
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Entradas", inflow.StringFixed(2)})
	_ = writer.Write([]string{"Saídas", outflow.StringFixed(2)})
	_ = writer.Write([]string{"Saldo", balance.StringFixed(2)})

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("caixa_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// LedgerXLSX exports the same range as a spreadsheet.
func (s *ReportService) LedgerXLSX(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	entries, err := s.ledgerRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Caixa"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Relatório de Caixa")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(sheet, "B1", fmt.Sprintf("%s a %s", from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02")))

	headers := []string{"Data", "Tipo", "Descrição", "Valor", "Forma", "Origem"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i := range entries {
		e := &entries[i]
		row := i + 4
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.EntryDate.Format("2006-01-02"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Direction)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Amount.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.PaymentMethod)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), e.EntryType)
	}

	inflow, outflow, balance := SummarizeEntries(entries)
	row := len(entries) + 5
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Entradas")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inflow.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "Saídas")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+1), outflow.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), "Saldo")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), balance.InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("caixa_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ReceivablesPDF renders the pending installment queue as of the given date.
func (s *ReportService) ReceivablesPDF(ctx context.Context, asOf time.Time) ([]byte, string, error) {
	receivables, err := s.collectionSvc.ListReceivables(ctx, asOf)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Parcelas a Receber")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 10, fmt.Sprintf("Posicao em %s", asOf.Format("02/01/2006")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(70, 8, "Processo")
	pdf.Cell(20, 8, "Parcela")
	pdf.Cell(30, 8, "Vencimento")
	pdf.Cell(30, 8, "Valor")
	pdf.Cell(30, 8, "Atraso")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for i := range receivables {
		r := &receivables[i]

		overdue := "-"
		if r.Overdue {
			overdue = fmt.Sprintf("%d dias", r.OverdueDays)
		}

		pdf.Cell(70, 7, r.CaseName)
		pdf.Cell(20, 7, fmt.Sprintf("%d", r.SequenceNumber))
		pdf.Cell(30, 7, r.DueDate.Format("02/01/2006"))
		pdf.Cell(30, 7, r.Amount.StringFixed(2))
		pdf.Cell(30, 7, overdue)
		pdf.Ln(7)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("a_receber_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
