package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fleetops/internal/app/server"
	"fleetops/internal/platform/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error any             `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		DatabaseURL:             dbURL,
		JWTSecret:               "test-secret",
		DataEncryptionKey:       "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
		Environment:             "test",
		SeedAdminEmail:          "admin@test.local",
		SeedAdminPassword:       "ChangeMe123!",
		DefaultEmployeePassword: "ChangeMe123!",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTL:         24 * time.Hour,
		EmailFrom:               "no-reply@test.local",
		RunMigrations:           true,
		RunSeed:                 true,
		MigrationsDir:           "../../../../migrations",
		MaxBodyBytes:            1048576,
		RateLimitPerMinute:      1000,
	}
}

func TestShiftSchedulingJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	employeeEmail := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, token, employeeEmail)

	day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	morningStart := day.Add(8 * time.Hour)
	morningEnd := day.Add(16 * time.Hour)

	shiftID := createShift(t, client, ts.URL, token, employeeID, morningStart, morningEnd, "")
	if shiftID == "" {
		t.Fatal("expected shift id")
	}

	// Overlapping assignment for the same employee must be rejected.
	status, _ := postShift(t, client, ts.URL, token, employeeID, morningStart.Add(4*time.Hour), morningEnd.Add(4*time.Hour), "")
	if status != http.StatusConflict {
		t.Fatalf("expected overlapping shift to return 409, got %d", status)
	}

	// Back to back is not a conflict, the boundary instant belongs to one shift.
	backToBackID := createShift(t, client, ts.URL, token, employeeID, morningEnd, morningEnd.Add(8*time.Hour), "")
	if backToBackID == "" {
		t.Fatal("expected back to back shift id")
	}

	dashboard := getJSON(t, client, ts.URL+"/api/v1/dashboard", token)
	var payload map[string]any
	if err := json.Unmarshal(dashboard.Data, &payload); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
}

func TestShiftCreateIdempotencyReplay(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	employeeEmail := fmt.Sprintf("replay-%d@example.com", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, token, employeeEmail)

	day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 2)
	key := fmt.Sprintf("create-%d", time.Now().UnixNano())

	first := createShift(t, client, ts.URL, token, employeeID, day.Add(8*time.Hour), day.Add(16*time.Hour), key)
	second := createShift(t, client, ts.URL, token, employeeID, day.Add(8*time.Hour), day.Add(16*time.Hour), key)
	if first != second {
		t.Fatalf("expected replayed create to return the same shift, got %s and %s", first, second)
	}

	shifts := listShifts(t, client, ts.URL, token, employeeID)
	if len(shifts) != 1 {
		t.Fatalf("expected one stored shift, got %d", len(shifts))
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/auth/login", "", "", map[string]any{
		"email":    email,
		"password": password,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	token, _ := payload["accessToken"].(string)
	if token == "" {
		t.Fatal("expected access token")
	}
	return token
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token, email string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/employees", token, "", map[string]any{
		"firstName": "Journey",
		"lastName":  "Tester",
		"email":     email,
		"role":      "technician",
		"active":    true,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode employee response: %v", err)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("expected employee id")
	}
	return id
}

func createShift(t *testing.T, client *http.Client, baseURL, token, employeeID string, start, end time.Time, idempotencyKey string) string {
	t.Helper()
	status, env := postShift(t, client, baseURL, token, employeeID, start, end, idempotencyKey)
	if status != http.StatusCreated {
		t.Fatalf("expected shift create to return 201, got %d", status)
	}
	var payload map[string]any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("failed to decode shift response: %v", err)
	}
	id, _ := payload["id"].(string)
	return id
}

func postShift(t *testing.T, client *http.Client, baseURL, token, employeeID string, start, end time.Time, idempotencyKey string) (int, envelope) {
	t.Helper()
	return postJSONStatus(t, client, baseURL+"/api/v1/shifts", token, idempotencyKey, map[string]any{
		"employeeId": employeeID,
		"start":      start.Format(time.RFC3339),
		"end":        end.Format(time.RFC3339),
	})
}

func listShifts(t *testing.T, client *http.Client, baseURL, token, employeeID string) []map[string]any {
	t.Helper()
	resp := getJSON(t, client, baseURL+"/api/v1/shifts?employeeId="+employeeID, token)
	var payload []map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode shifts response: %v", err)
	}
	return payload
}

func postJSON(t *testing.T, client *http.Client, url, token, idempotencyKey string, body any) envelope {
	t.Helper()
	status, env := postJSONStatus(t, client, url, token, idempotencyKey, body)
	if status >= 400 {
		t.Fatalf("unexpected status %d for %s", status, url)
	}
	return env
}

func postJSONStatus(t *testing.T, client *http.Client, url, token, idempotencyKey string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response %s: %v", string(raw), err)
	}
	return resp.StatusCode, env
}

func getJSON(t *testing.T, client *http.Client, url, token string) envelope {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	return env
}
