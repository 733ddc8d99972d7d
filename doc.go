// Package sendpigeon provides a Go client SDK for SendPigeon, a
// transactional-email API.
//
// Every API operation returns a [Result] instead of a bare error: success
// carries the decoded response, failure carries an [*Error] classified as
// api_error, network_error, timeout_error, or validation_error. Transient
// failures (connection errors, timeouts, 429, 5xx) are retried with
// exponential backoff before a Result is produced; 4xx client errors never
// are.
//
// Basic usage:
//
//	client, err := sendpigeon.New("sk_live_xxx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result := client.Send(ctx, &sendpigeon.SendEmailParams{
//	    To:      []string{"user@example.com"},
//	    Subject: "Welcome!",
//	    HTML:    "<h1>Hi</h1>",
//	})
//	if !result.OK() {
//	    log.Fatal(result.Err())
//	}
//	fmt.Println("sent:", result.Data().ID)
//
// Webhook signature verification lives in the webhooks subpackage and makes
// no network calls.
package sendpigeon
