package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/notifications"
	"fleetops/internal/platform/config"
)

type fakeAlertSource struct {
	alerts []alerts.Alert
}

func (f fakeAlertSource) Pending(context.Context) ([]alerts.Alert, error) {
	return f.alerts, nil
}

type recordedNotification struct {
	UserID  string
	Email   string
	Kind    notifications.Type
	Subject string
	Body    string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(_ context.Context, userID, email string, kind notifications.Type, subject, body string) error {
	f.sent = append(f.sent, recordedNotification{UserID: userID, Email: email, Kind: kind, Subject: subject, Body: body})
	return nil
}

type fakeDirectory struct {
	account auth.Account
	err     error
}

func (f fakeDirectory) AccountByEmail(context.Context, string) (auth.Account, error) {
	return f.account, f.err
}

func TestSweepAlertsNotifiesAdmin(t *testing.T) {
	notifier := &fakeNotifier{}
	service := &Service{
		Cfg: config.Config{SeedAdminEmail: "admin@test.local"},
		Alerts: fakeAlertSource{alerts: []alerts.Alert{
			{Description: "ITV expired", Urgency: alerts.UrgencyHigh},
			{Description: "Oil change soon", Urgency: alerts.UrgencyMedium},
		}},
		Notifier:  notifier,
		Directory: fakeDirectory{account: auth.Account{ID: "admin-1", Email: "admin@test.local"}},
	}

	summary, err := service.SweepAlerts(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if summary != "2 pending, 1 high urgency" {
		t.Fatalf("unexpected summary %q", summary)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	got := notifier.sent[0]
	if got.Kind != notifications.TypeAlertRaised {
		t.Fatalf("expected %s, got %s", notifications.TypeAlertRaised, got.Kind)
	}
	if got.UserID != "admin-1" || got.Email != "admin@test.local" {
		t.Fatalf("unexpected recipient %s <%s>", got.UserID, got.Email)
	}
	if !strings.Contains(got.Body, "ITV expired") {
		t.Fatalf("expected the urgent alert in the digest, got %q", got.Body)
	}
	if strings.Contains(got.Body, "Oil change soon") {
		t.Fatal("medium urgency alerts do not belong in the digest")
	}
}

func TestSweepAlertsNothingUrgent(t *testing.T) {
	notifier := &fakeNotifier{}
	service := &Service{
		Cfg: config.Config{SeedAdminEmail: "admin@test.local"},
		Alerts: fakeAlertSource{alerts: []alerts.Alert{
			{Description: "Oil change soon", Urgency: alerts.UrgencyMedium},
		}},
		Notifier:  notifier,
		Directory: fakeDirectory{account: auth.Account{ID: "admin-1"}},
	}

	summary, err := service.SweepAlerts(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if summary != "1 pending, 0 high urgency" {
		t.Fatalf("unexpected summary %q", summary)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notification, got %d", len(notifier.sent))
	}
}

func TestSweepAlertsUnknownRecipient(t *testing.T) {
	notifier := &fakeNotifier{}
	service := &Service{
		Cfg: config.Config{SeedAdminEmail: "admin@test.local"},
		Alerts: fakeAlertSource{alerts: []alerts.Alert{
			{Description: "ITV expired", Urgency: alerts.UrgencyHigh},
		}},
		Notifier:  notifier,
		Directory: fakeDirectory{err: errors.New("no account")},
	}

	summary, err := service.SweepAlerts(context.Background())
	if err != nil {
		t.Fatalf("sweep must not fail on a missing recipient: %v", err)
	}
	if summary != "1 pending, 1 high urgency" {
		t.Fatalf("unexpected summary %q", summary)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notification, got %d", len(notifier.sent))
	}
}
