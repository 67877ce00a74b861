package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"miniblog/internal/common"
	"miniblog/internal/postservice"
	"miniblog/internal/userservice"
)

type noopProducer struct{}

func (noopProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	return nil
}

func newTestApplication(t *testing.T) *application {
	cfg, err := loadConfig("../.test.env")
	if err != nil {
		t.Fatalf("could not load test config: %v", err)
	}

	db := common.TestDB("file://../migrations", t)

	tokenService, err := userservice.NewTokenService(cfg.JWTSecret)
	if err != nil {
		t.Fatalf("could not create token service: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, tokenService, noopProducer{}, logger),
		postService: postservice.NewPostService(db),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(h http.Handler) *testServer {
	return &testServer{httptest.NewServer(h)}
}

func (ts *testServer) get(t *testing.T, urlPath, token string) (int, string) {
	return ts.do(t, http.MethodGet, urlPath, nil, token)
}

func (ts *testServer) post(t *testing.T, urlPath string, payload any, token string) (int, string) {
	return ts.do(t, http.MethodPost, urlPath, payload, token)
}

func (ts *testServer) patch(t *testing.T, urlPath string, payload any, token string) (int, string) {
	return ts.do(t, http.MethodPatch, urlPath, payload, token)
}

func (ts *testServer) delete(t *testing.T, urlPath, token string) (int, string) {
	return ts.do(t, http.MethodDelete, urlPath, nil, token)
}

func (ts *testServer) do(t *testing.T, method, urlPath string, payload any, token string) (int, string) {
	var body io.Reader
	if payload != nil {
		js, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		body = bytes.NewReader(js)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, body)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rs, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("could not send request: %v", err)
	}
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatalf("could not read response body: %v", err)
	}

	return rs.StatusCode, string(bytes.TrimSpace(respBody))
}
