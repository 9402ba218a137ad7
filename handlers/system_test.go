// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/realtime"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/testutil"
)

type downDB struct{}

func (downDB) Ping(ctx context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("healthy", func(t *testing.T) {
		h := NewSystemHandler(store.New(env.db), env.registry)
		w := serve(h.Health, testutil.MakeRequest("GET", "/health", nil, nil), nil)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.HealthResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Status != "healthy" || resp.Service != ServiceName {
			t.Errorf("Unexpected health response: %+v", resp)
		}
		if resp.Connections != 0 {
			t.Errorf("Expected 0 connections, got %d", resp.Connections)
		}
	})

	t.Run("database down", func(t *testing.T) {
		h := NewSystemHandler(downDB{}, realtime.NewRegistry(0))
		w := serve(h.Health, testutil.MakeRequest("GET", "/health", nil, nil), nil)

		testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
	})
}

func TestInfo(t *testing.T) {
	h := NewSystemHandler(downDB{}, realtime.NewRegistry(0))

	w := serve(h.Info, testutil.MakeRequest("GET", "/", nil, nil), nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.InfoResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Name != ServiceName {
		t.Errorf("Expected name '%s', got '%s'", ServiceName, resp.Name)
	}
	if len(resp.Endpoints["questions"]) != 5 {
		t.Errorf("Expected 5 question endpoints, got %v", resp.Endpoints["questions"])
	}
}

func TestSuggest(t *testing.T) {
	h := NewSuggestHandler()

	t.Run("returns the canned suggestions", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		w := serve(h.Suggest, testutil.MakeRequest("POST", "/suggest", models.SuggestRequest{Question: long}, nil), nil)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SuggestResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Suggestions) != 2 {
			t.Fatalf("Expected 2 suggestions, got %d", len(resp.Suggestions))
		}

		expected := []models.Suggestion{
			{ID: "s1", Confidence: 0.86, Source: "mock_kb:reset_password"},
			{ID: "s2", Confidence: 0.78, Source: "mock_kb:howto_reset"},
		}
		for i, s := range resp.Suggestions {
			if s.ID != expected[i].ID || s.Confidence != expected[i].Confidence || s.Source != expected[i].Source {
				t.Errorf("Suggestion %d: expected %+v, got %+v", i, expected[i], s)
			}
			if !strings.HasSuffix(s.Text, strings.Repeat("x", 80)+")") || strings.Contains(s.Text, strings.Repeat("x", 81)) {
				t.Errorf("Expected text to embed the first 80 characters, got '%s'", s.Text)
			}
		}
	})

	t.Run("echoes the question as sent", func(t *testing.T) {
		w := serve(h.Suggest, testutil.MakeRequest("POST", "/suggest", models.SuggestRequest{Question: "  reset password?  "}, nil), nil)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SuggestResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Question != "  reset password?  " {
			t.Errorf("Expected untrimmed question, got '%s'", resp.Question)
		}
	})

	t.Run("empty question", func(t *testing.T) {
		w := serve(h.Suggest, testutil.MakeRequest("POST", "/suggest", models.SuggestRequest{Question: " "}, nil), nil)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
