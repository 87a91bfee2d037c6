package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

var ErrExportNoSwaps = errors.New("no swap requests to export")

// ExportService renders admin exports.
//
// The export is returned as a bytes.Buffer; the handler sets the HTTP
// headers and streams it.
type ExportService interface {
	// ExportSwaps renders all swap requests (optionally filtered by
	// status) as an .xlsx workbook.
	ExportSwaps(ctx context.Context, status model.SwapStatus) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const exportPageSize = 500

func (s *exportService) ExportSwaps(ctx context.Context, status model.SwapStatus) (*bytes.Buffer, string, error) {
	filters := &repository.SwapListFilters{Status: status}

	var records []model.SwapRequest
	for offset := 0; ; offset += exportPageSize {
		page, _, err := s.repo.Swap.List(ctx, filters, offset, exportPageSize)
		if err != nil {
			s.logger.Error("list swaps for export failed", zap.Error(err))
			return nil, "", err
		}
		records = append(records, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	if len(records) == 0 {
		return nil, "", ErrExportNoSwaps
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Swap Requests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Requester", "Requested", "Skill Offered", "Skill Wanted", "Status", "Created", "Updated"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range records {
		values := []interface{}{
			r.SwapRequestID,
			r.RequesterID,
			r.RequestedID,
			skillLabel(r.SkillOffered, r.SkillOfferedID),
			skillLabel(r.SkillWanted, r.SkillWantedID),
			string(r.Status),
			formatTime(r.CreatedAt),
			formatTime(r.UpdatedAt),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write export workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("swap-requests-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return buf, filename, nil
}

func skillLabel(skill *model.Skill, fallbackID string) string {
	if skill != nil {
		return skill.Name
	}
	return fallbackID
}
