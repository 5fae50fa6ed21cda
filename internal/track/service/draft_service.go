package service

import (
	"context"
	"fmt"

	"github.com/alterians/Lojistik-Asistan/internal/shared/llm"
	"github.com/alterians/Lojistik-Asistan/internal/track/report"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
)

// DraftService prepares reminder email drafts through the text-generation
// collaborator. The service is responsible for handing the collaborator a
// classified, most-urgent-first line list; the collaborator's output is
// opaque text.
type DraftService struct {
	lineRepo *repository.OrderLineRepository
	client   *llm.Client
}

func NewDraftService(repos *repository.Repositories, client *llm.Client) *DraftService {
	return &DraftService{lineRepo: repos.Line, client: client}
}

// DraftEmail drafts a reminder for one supplier's lines in a snapshot.
func (s *DraftService) DraftEmail(ctx context.Context, snapshotID, supplierName, extra string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("taslak servisi yapılandırılmadı")
	}
	lines, err := s.lineRepo.ListBySupplierName(ctx, snapshotID, supplierName)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("tedarikçi için açık kalem yok: %s", supplierName)
	}
	return s.client.DraftReminder(ctx, supplierName, report.SortByUrgency(lines), extra)
}

// RefineEmail revises an existing draft per a free-text instruction.
func (s *DraftService) RefineEmail(ctx context.Context, draft, instruction string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("taslak servisi yapılandırılmadı")
	}
	return s.client.RefineDraft(ctx, draft, instruction)
}

// ExtractUpdates proposes delivery date changes for a snapshot from free text
// and an optional image. The proposals are not applied here; the caller
// confirms them and routes them through TrackingService.ApplyDateUpdates.
func (s *DraftService) ExtractUpdates(ctx context.Context, snapshotID, instruction, imageDataURL string) (llm.ExtractResult, error) {
	if s.client == nil {
		return llm.ExtractResult{}, fmt.Errorf("taslak servisi yapılandırılmadı")
	}
	lines, err := s.lineRepo.ListBySnapshot(ctx, snapshotID)
	if err != nil {
		return llm.ExtractResult{}, err
	}
	return s.client.ExtractDateUpdates(ctx, lines, instruction, imageDataURL)
}
