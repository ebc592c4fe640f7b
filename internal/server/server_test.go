package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocable/internal/cable"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(New())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestCableCalcRoundTrip(t *testing.T) {
	srv := httptest.NewServer(New())
	defer srv.Close()

	payload := `{"span":5,"a_eff":0.01,"e_modulus":210000000,
		"point_loads":[{"position":2.5,"magnitude":100}]}`
	resp, err := http.Post(srv.URL+"/api/tools/cable/calc", "application/json",
		strings.NewReader(payload))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var res cable.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !res.Converged {
		t.Error("solve did not converge")
	}
	if res.H <= 0 || res.Sag <= 0 {
		t.Errorf("implausible equilibrium: H=%g sag=%g", res.H, res.Sag)
	}
}

func TestBadPayloadRejected(t *testing.T) {
	srv := httptest.NewServer(New())
	defer srv.Close()

	for _, tt := range []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/api/tools/cable/calc", "{not json"},
		{"invalid solver", "/api/tools/cable/calc", `{"span":-1,"a_eff":0.01,"e_modulus":1}`},
		{"frame without nodes", "/api/tools/frame/calc", `{"members":[{"start":0,"end":1}]}`},
	} {
		resp, err := http.Post(srv.URL+tt.path, "application/json", strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("%s: POST: %v", tt.name, err)
		}
		resp.Body.Close()
		if resp.StatusCode < 400 || resp.StatusCode >= 500 {
			t.Errorf("%s: status = %d, want 4xx", tt.name, resp.StatusCode)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := httptest.NewServer(New())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/tools/cable/calc", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
