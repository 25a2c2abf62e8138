package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/GregMSThompson/retail-backend/internal/errs"
)

type echoPayload struct {
	Value string `json:"value"`
}

func TestGet_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/things/t1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		json.NewEncoder(w).Encode(echoPayload{Value: "hello"})
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	var out echoPayload
	err := c.Get(context.Background(), "/v1/things/t1", url.Values{"page": {"2"}}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != "hello" {
		t.Errorf("expected decoded value, got %+v", out)
	}
}

func TestPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		var in echoPayload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	var out echoPayload
	err := c.Post(context.Background(), "/v1/things", echoPayload{Value: "ping"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != "ping" {
		t.Errorf("expected echo, got %+v", out)
	}
}

func TestDo_NotFoundBecomesTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "thing missing"})
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	err := c.Get(context.Background(), "/v1/things/x", nil, &echoPayload{})
	nf, ok := err.(*errs.NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Message != "thing missing" {
		t.Errorf("expected upstream message, got %q", nf.Message)
	}
}

func TestDo_ServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	err := c.Get(context.Background(), "/v1/things", nil, &echoPayload{})
	es, ok := err.(*errs.ExternalServiceError)
	if !ok {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if !es.Transient || es.Service != "things" {
		t.Errorf("expected transient error for things, got %+v", es)
	}
}

func TestDo_ClientErrorIsNotTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "bad input"})
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	err := c.Get(context.Background(), "/v1/things", nil, &echoPayload{})
	es, ok := err.(*errs.ExternalServiceError)
	if !ok {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if es.Transient {
		t.Errorf("expected non-transient error, got %+v", es)
	}
	if es.Message != "bad input" {
		t.Errorf("expected upstream message, got %q", es.Message)
	}
}

func TestDo_ConnectionFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New("things", srv.URL, http.DefaultClient)
	err := c.Get(context.Background(), "/v1/things", nil, &echoPayload{})
	es, ok := err.(*errs.ExternalServiceError)
	if !ok {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if !es.Transient {
		t.Errorf("expected transient error, got %+v", es)
	}
}

func TestDo_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New("things", srv.URL, srv.Client())
	err := c.Get(context.Background(), "/v1/things", nil, &echoPayload{})
	es, ok := err.(*errs.ExternalServiceError)
	if !ok {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if es.Transient {
		t.Errorf("malformed body is not transient, got %+v", es)
	}
}
