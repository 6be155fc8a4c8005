//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	ekdsend "github.com/ekddigital/ekdsend-go"
	"github.com/joho/godotenv"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("EKDSEND_API_KEY")
	baseURL = os.Getenv("EKDSEND_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: EKDSEND_API_KEY not set\n")
		os.Exit(0)
	}

	if baseURL != "" {
		os.Stderr.WriteString("API URL: " + baseURL + "\n")
	}

	os.Stderr.WriteString("Running integration tests...\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *ekdsend.Client {
	t.Helper()

	opts := []ekdsend.Option{
		ekdsend.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, ekdsend.WithBaseURL(baseURL))
	}

	client, err := ekdsend.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_SendAndGetEmail(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	to := os.Getenv("EKDSEND_TEST_EMAIL")
	if to == "" {
		to = "delivered@ekddigital.com"
	}

	email, err := client.Emails.Send(ctx, &ekdsend.SendEmailParams{
		From:    "onboarding@ekddigital.com",
		To:      []string{to},
		Subject: "Integration test",
		Text:    "Hello from the Go SDK integration suite.",
		Tags:    []string{"integration"},
	})
	if err != nil {
		t.Fatalf("Emails.Send() error = %v", err)
	}

	t.Logf("Sent email: %s (status %s)", email.ID, email.Status)

	if email.ID == "" {
		t.Fatal("email ID is empty")
	}

	got, err := client.Emails.Get(ctx, email.ID)
	if err != nil {
		t.Fatalf("Emails.Get() error = %v", err)
	}
	if got.ID != email.ID {
		t.Errorf("Get() ID = %s, want %s", got.ID, email.ID)
	}
}

func TestIntegration_ListEmails(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	page, err := client.Emails.List(ctx, &ekdsend.ListOptions{Limit: 5})
	if err != nil {
		t.Fatalf("Emails.List() error = %v", err)
	}

	t.Logf("Listed %d of %d emails", len(page.Data), page.Total)

	if page.Limit != 5 {
		t.Errorf("Limit = %d, want 5", page.Limit)
	}
	if len(page.Data) > 5 {
		t.Errorf("len(Data) = %d, want <= 5", len(page.Data))
	}
}

func TestIntegration_GetUnknownEmail(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Emails.Get(ctx, "email_does_not_exist")
	if err == nil {
		t.Fatal("Emails.Get() expected error for unknown ID")
	}
	if !errors.Is(err, ekdsend.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestIntegration_SendSMS(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	sms, err := client.SMS.Send(ctx, &ekdsend.SendSMSParams{
		To:      os.Getenv("EKDSEND_TEST_PHONE"),
		Message: "Integration test message",
	})
	if err != nil {
		if errors.Is(err, ekdsend.ErrValidation) {
			t.Skip("SMS sending not configured for this account")
		}
		t.Fatalf("SMS.Send() error = %v", err)
	}

	t.Logf("Sent SMS: %s (%d segments)", sms.ID, sms.Segments)

	if sms.ID == "" {
		t.Error("SMS ID is empty")
	}
}
