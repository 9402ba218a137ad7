// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package webhook posts answer notifications to an external URL.
// Delivery is best effort: one attempt, no retry, failures are logged.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-ask/models"
)

const EventAnswered = "answered"

type Notifier struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// New returns a notifier for url, or nil when url is empty.
// A nil *Notifier is valid and does nothing.
func New(url string, timeout time.Duration) *Notifier {
	if url == "" {
		return nil
	}
	return &Notifier{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Post sends payload and returns once the endpoint has responded
func (n *Notifier) Post(ctx context.Context, payload models.AnsweredNotification) error {
	if n == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Notify posts in the background. The caller is never blocked and never
// sees an error; done, if non-nil, is called after the attempt.
func (n *Notifier) Notify(payload models.AnsweredNotification, done func(error)) {
	if n == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		err := n.Post(ctx, payload)
		if err != nil {
			slog.Error("webhook failed", "question_id", payload.QuestionID, "error", err)
		} else {
			slog.Info("webhook delivered", "question_id", payload.QuestionID)
		}
		if done != nil {
			done(err)
		}
	}()
}
