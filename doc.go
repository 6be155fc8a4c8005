// Package ekdsend provides a Go client SDK for the EKDSend API,
// a unified platform for email, SMS, and voice communications.
//
// Basic usage:
//
//	client, err := ekdsend.New("ek_live_xxxxxxxxxxxxx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	email, err := client.Emails.Send(ctx, &ekdsend.SendEmailParams{
//	    From:    "hello@yourdomain.com",
//	    To:      []string{"user@example.com"},
//	    Subject: "Hello!",
//	    HTML:    "<h1>World</h1>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Sent:", email.ID)
//
// API keys are prefixed ek_live_ or ek_test_ to distinguish live and test
// environments; the prefix is validated at construction time.
//
// Failed requests surface as typed errors that work with errors.Is:
//
//	_, err := client.Emails.Get(ctx, "missing")
//	if errors.Is(err, ekdsend.ErrNotFound) {
//	    // handle missing email
//	}
//
// Transient failures (5xx, rate limits, network errors) are retried
// automatically with exponential backoff; see WithMaxRetries.
package ekdsend
