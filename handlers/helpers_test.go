// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/realtime"
	"github.com/danielhkuo/quickly-ask/service"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/testutil"
)

type testEnv struct {
	db       *sql.DB
	registry *realtime.Registry
	svc      *service.Dashboard
}

// newTestEnv wires a dashboard over a fresh database and a live registry
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	registry := realtime.NewRegistry(time.Second)
	t.Cleanup(func() {
		registry.Close()
		db.Close()
	})

	cfg := testutil.GetTestConfig()
	svc := service.New(store.New(db), registry, auth.NewSigner(cfg.SigningSecret), nil, service.Options{
		TokenTTL:           cfg.TokenTTL,
		AdminBootstrapCode: cfg.AdminBootstrapCode,
	})

	return testEnv{db: db, registry: registry, svc: svc}
}

// serve runs h against req with the given path values set
func serve(h http.HandlerFunc, req *http.Request, pathValues map[string]string) *httptest.ResponseRecorder {
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
