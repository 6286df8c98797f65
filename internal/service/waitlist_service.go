package service

import (
	"context"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/pkg/mailer"
	"ai-resume-be/internal/repository/memory"
)

type IWaitlistService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeWaitlistRequest) (*dto.SubscribeWaitlistResponse, error)
}

type waitlistService struct {
	waitlistRepo *memory.WaitlistRepository
	emails       mailer.IEmailService
	log          logger.ILogger
}

func NewWaitlistService(waitlistRepo *memory.WaitlistRepository, emails mailer.IEmailService, log logger.ILogger) IWaitlistService {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		emails:       emails,
		log:          log,
	}
}

// Subscribe is idempotent: re-subscribing an email that is already on the
// list succeeds without sending another confirmation.
func (s *waitlistService) Subscribe(ctx context.Context, req *dto.SubscribeWaitlistRequest) (*dto.SubscribeWaitlistResponse, error) {
	added := s.waitlistRepo.Add(req.Email)
	if added {
		if err := s.emails.SendWaitlistConfirmation(req.Email); err != nil {
			// The signup already counts; confirmation mail is best effort.
			s.log.Error("WaitlistService", "failed to send confirmation email", map[string]interface{}{
				"error": err.Error(),
			})
		}
		s.log.Info("WaitlistService", "waitlist signup", map[string]interface{}{
			"total": s.waitlistRepo.Count(),
		})
	}

	return &dto.SubscribeWaitlistResponse{
		Email:      req.Email,
		Subscribed: true,
	}, nil
}
