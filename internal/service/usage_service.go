package service

import (
	"github.com/google/uuid"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/repository/memory"
)

// IUsageService meters free-tier AI exchanges. One unit covers the whole
// send: augmentation, the model call, and any applied insertion. Failed
// provider calls are never charged.
type IUsageService interface {
	CanUse(sessionId uuid.UUID) bool
	RecordUse(sessionId uuid.UUID)
	Remaining(sessionId uuid.UUID) int
	GetUsage(sessionId uuid.UUID) *dto.GetUsageResponse
}

type usageService struct {
	usageRepo *memory.UsageRepository
	limit     int
}

func NewUsageService(usageRepo *memory.UsageRepository, limit int) IUsageService {
	return &usageService{
		usageRepo: usageRepo,
		limit:     limit,
	}
}

func (s *usageService) CanUse(sessionId uuid.UUID) bool {
	return s.usageRepo.Count(sessionId.String()) < s.limit
}

func (s *usageService) RecordUse(sessionId uuid.UUID) {
	s.usageRepo.Increment(sessionId.String())
}

func (s *usageService) Remaining(sessionId uuid.UUID) int {
	remaining := s.limit - s.usageRepo.Count(sessionId.String())
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (s *usageService) GetUsage(sessionId uuid.UUID) *dto.GetUsageResponse {
	used := s.usageRepo.Count(sessionId.String())
	remaining := s.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &dto.GetUsageResponse{
		Used:      used,
		Limit:     s.limit,
		Remaining: remaining,
		CanUseAI:  used < s.limit,
	}
}
