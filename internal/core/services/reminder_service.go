package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// ReminderService runs the daily backlog sweep: every morning it counts
// pending requests and complaints and logs (and, when mail is enabled,
// mails the scolarité inbox) a summary so nothing sits untriaged.
type ReminderService struct {
	requestRepo   *repositories.RequestRepository
	complaintRepo *repositories.ComplaintRepository
	mailer        *Mailer
	adminEmail    string
	cron          *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	requestRepo *repositories.RequestRepository,
	complaintRepo *repositories.ComplaintRepository,
	mailer *Mailer,
	adminEmail string,
) *ReminderService {
	return &ReminderService{
		requestRepo:   requestRepo,
		complaintRepo: complaintRepo,
		mailer:        mailer,
		adminEmail:    adminEmail,
		cron:          cron.New(),
	}
}

// Start schedules the daily sweep (08:30)
func (s *ReminderService) Start() {
	s.cron.AddFunc("30 8 * * *", s.sweep)
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pendingRequests, err := s.requestRepo.CountByStatus(ctx, string(domain.RequestPending))
	if err != nil {
		log.Printf("⚠️ Reminder sweep failed counting requests: %v", err)
		return
	}
	pendingComplaints, err := s.complaintRepo.CountByStatus(ctx, string(domain.ComplaintPending))
	if err != nil {
		log.Printf("⚠️ Reminder sweep failed counting complaints: %v", err)
		return
	}

	if pendingRequests == 0 && pendingComplaints == 0 {
		return
	}

	log.Printf("⏰ Backlog reminder: %d pending requests, %d pending complaints",
		pendingRequests, pendingComplaints)

	if s.mailer != nil && s.mailer.Enabled() && s.adminEmail != "" {
		body := fmt.Sprintf("Demandes en attente : %d\nRéclamations en attente : %d",
			pendingRequests, pendingComplaints)
		if err := s.mailer.Send(ctx, s.adminEmail, "Rappel quotidien : dossiers en attente", body); err != nil {
			log.Printf("⚠️ Failed to send backlog reminder: %v", err)
		}
	}
}
