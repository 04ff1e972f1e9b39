package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportNoContracts  = errors.New("no contracts to export")
	ErrExportGenerateFail = errors.New("generating export file failed")
)

// ExportService produces downloadable snapshots of the store: the
// contract register as an Excel workbook and the published tender
// deadlines as an iCalendar feed. Both return a buffer plus a suggested
// filename; the handler sets the HTTP headers.
type ExportService interface {
	ContractRegister(ctx context.Context) (*bytes.Buffer, string, error)
	DeadlineCalendar(ctx context.Context, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var registerHeaders = []string{
	"Contract number", "Title", "Supplier ID", "Amount", "Currency",
	"Signature date", "Start date", "Planned end date", "Status",
	"Accumulated penalties",
}

func (s *exportService) ContractRegister(ctx context.Context) (*bytes.Buffer, string, error) {
	contracts, err := s.repo.Contract.List(ctx, "")
	if err != nil {
		s.logger.Error("list contracts failed", zap.Error(err))
		return nil, "", err
	}
	if len(contracts) == 0 {
		return nil, "", ErrExportNoContracts
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Contracts"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "B", 24)
	f.SetColWidth(sheetName, "C", "J", 16)

	for row, c := range contracts {
		penalties := ""
		if c.AccumulatedPenalties != nil {
			penalties = c.AccumulatedPenalties.StringFixed(2)
		}
		values := []any{
			c.ContractNumber,
			c.Title,
			c.SupplierID,
			c.ContractAmount.StringFixed(2),
			c.Currency,
			c.SignatureDate.Format("2006-01-02"),
			c.StartDate.Format("2006-01-02"),
			c.PlannedEndDate.Format("2006-01-02"),
			c.Status,
			penalties,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("contract_register_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func (s *exportService) DeadlineCalendar(ctx context.Context, now time.Time) (*bytes.Buffer, string, error) {
	tenders, err := s.repo.Tender.List(ctx, model.TenderPublished)
	if err != nil {
		s.logger.Error("list published tenders failed", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gcpRSM//Tender deadlines//FR")

	for _, t := range tenders {
		// Past deadlines carry no scheduling value.
		if t.SubmissionDeadline.Before(now) {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("tender-%s@gcprsm", t.ID))
		event.SetCreatedTime(t.CreatedAt)
		event.SetDtStampTime(now)
		event.SetStartAt(t.SubmissionDeadline)
		event.SetEndAt(t.SubmissionDeadline.Add(time.Hour))
		event.SetSummary(fmt.Sprintf("%s (soumission %s)", t.Title, t.Reference))
		if t.ExecutionLocation != nil {
			event.SetLocation(*t.ExecutionLocation)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "tender_deadlines.ics", nil
}
