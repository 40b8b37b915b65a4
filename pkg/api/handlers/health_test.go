package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marmos91/finfo/pkg/fileinfo"
)

// mockLabels implements maclabel.Subsystem for testing
type mockLabels struct {
	enabled bool
}

func (m *mockLabels) Enabled() bool { return m.enabled }

func (m *mockLabels) Label(string, bool) (string, bool) { return "", false }

func (m *mockLabels) LabelFd(int) (string, bool) { return "", false }

func TestLiveness_ReturnsOK(t *testing.T) {
	handler := NewHealthHandler(nil, nil, "test")
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Liveness(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", resp.Status)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected Data to be a map, got %T", resp.Data)
	}

	if data["service"] != "finfo" {
		t.Errorf("Expected service 'finfo', got '%s'", data["service"])
	}
	if data["version"] != "test" {
		t.Errorf("Expected version 'test', got '%s'", data["version"])
	}
	if data["instance"] == nil || data["instance"] == "" {
		t.Error("Expected instance id to be set")
	}
	if _, ok := data["uptime_sec"]; !ok {
		t.Error("Expected uptime_sec to be set")
	}
}

func TestLiveness_StableInstanceID(t *testing.T) {
	handler := NewHealthHandler(nil, nil, "test")

	instance := func() string {
		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		handler.Liveness(w, req)

		var resp Response
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return resp.Data.(map[string]interface{})["instance"].(string)
	}

	first := instance()
	second := instance()
	if first != second {
		t.Errorf("Expected stable instance id, got '%s' then '%s'", first, second)
	}
}

func TestReadiness_NoCollector_Returns503(t *testing.T) {
	handler := NewHealthHandler(nil, nil, "test")
	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()

	handler.Readiness(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "unhealthy" {
		t.Errorf("Expected status 'unhealthy', got '%s'", resp.Status)
	}

	if resp.Error != "collector not initialized" {
		t.Errorf("Expected error 'collector not initialized', got '%s'", resp.Error)
	}
}

func TestReadiness_WithCollector_ReturnsOK(t *testing.T) {
	collector := fileinfo.New(fileinfo.Config{}, nil, nil)
	handler := NewHealthHandler(collector, nil, "test")
	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()

	handler.Readiness(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", resp.Status)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected Data to be a map, got %T", resp.Data)
	}

	if data["collector"] != "ready" {
		t.Errorf("Expected collector 'ready', got '%s'", data["collector"])
	}
	if data["mac_labels"] != "disabled" {
		t.Errorf("Expected mac_labels 'disabled', got '%s'", data["mac_labels"])
	}
}

func TestReadiness_LabelsEnabled_ReportsEnabled(t *testing.T) {
	collector := fileinfo.New(fileinfo.Config{}, nil, nil)
	handler := NewHealthHandler(collector, &mockLabels{enabled: true}, "test")
	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()

	handler.Readiness(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["mac_labels"] != "enabled" {
		t.Errorf("Expected mac_labels 'enabled', got '%s'", data["mac_labels"])
	}
}
