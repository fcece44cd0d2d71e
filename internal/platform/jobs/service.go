package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/notifications"
	"fleetops/internal/platform/config"
)

const JobAlertSweep = "alert_sweep"

// AlertSource yields the current unseen alerts, best first.
type AlertSource interface {
	Pending(ctx context.Context) ([]alerts.Alert, error)
}

// Notifier records the digest for the recipient, in-app plus email.
type Notifier interface {
	Notify(ctx context.Context, userID, email string, kind notifications.Type, subject, body string) error
}

// Directory resolves the digest recipient account.
type Directory interface {
	AccountByEmail(ctx context.Context, email string) (auth.Account, error)
}

// Service runs background jobs on a single worker. Scheduled sweeps and
// ad-hoc runs share the queue so only one job executes at a time.
type Service struct {
	DB        *pgxpool.Pool
	Cfg       config.Config
	Alerts    AlertSource
	Notifier  Notifier
	Directory Directory
	queue     chan job
}

type job struct {
	Type string
	Run  func(context.Context) (string, error)
}

func New(db *pgxpool.Pool, cfg config.Config, alertSource AlertSource, notifier Notifier, directory Directory) *Service {
	return &Service{
		DB:        db,
		Cfg:       cfg,
		Alerts:    alertSource,
		Notifier:  notifier,
		Directory: directory,
		queue:     make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.AlertSweepInterval > 0 {
		go s.scheduleSweeps(ctx, s.Cfg.AlertSweepInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (string, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

// RunNow executes a job synchronously, bypassing the queue.
func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (string, error)) (string, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (string, error) {
	var runID string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, 'running')
    RETURNING id
  `, j.Type).Scan(&runID); err != nil {
		return "", err
	}

	detail, err := j.Run(ctx)
	status := "succeeded"
	if err != nil {
		status = "failed"
		detail = err.Error()
	}

	if _, updateErr := s.DB.Exec(ctx, `
    UPDATE job_runs SET status = $2, detail = $3, finished_at = now()
    WHERE id = $1
  `, runID, status, detail); updateErr != nil {
		slog.Warn("job run not recorded", "jobType", j.Type, "err", updateErr)
	}
	return detail, err
}

func (s *Service) scheduleSweeps(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobAlertSweep, s.SweepAlerts)
		}
	}
}

// SweepAlerts derives the pending alerts and raises an alert_raised
// notification for the admin covering the high-urgency ones.
func (s *Service) SweepAlerts(ctx context.Context) (string, error) {
	pending, err := s.Alerts.Pending(ctx)
	if err != nil {
		return "", err
	}

	var urgent []alerts.Alert
	for _, alert := range pending {
		if alert.Urgency == alerts.UrgencyHigh {
			urgent = append(urgent, alert)
		}
	}

	summary := fmt.Sprintf("%d pending, %d high urgency", len(pending), len(urgent))
	if len(urgent) == 0 || s.Cfg.SeedAdminEmail == "" {
		return summary, nil
	}

	account, err := s.Directory.AccountByEmail(ctx, s.Cfg.SeedAdminEmail)
	if err != nil {
		slog.Warn("digest recipient not found", "email", s.Cfg.SeedAdminEmail, "err", err)
		return summary, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The following %d alerts need attention:\n\n", len(urgent))
	for _, alert := range urgent {
		fmt.Fprintf(&b, "- %s\n", alert.Description)
	}
	if err := s.Notifier.Notify(ctx, account.ID, account.Email, notifications.TypeAlertRaised, "Urgent fleet alerts", b.String()); err != nil {
		slog.Warn("alert digest not delivered", "err", err)
	}
	return summary, nil
}
