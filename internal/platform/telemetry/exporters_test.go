package telemetry

import (
	"errors"
	"testing"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
		wantErr      error
	}{
		{"http://otel-collector:4318", "otel-collector:4318", true, nil},
		{"https://collector.example.com", "collector.example.com", false, nil},
		{"otel-collector:4318", "otel-collector:4318", true, nil},
		{"", "", false, errNoEndpoint},
	}

	for _, tt := range tests {
		host, insecure, err := collector(tt.endpoint)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("collector(%q) error = %v, want %v", tt.endpoint, err, tt.wantErr)
			continue
		}
		if host != tt.wantHost || insecure != tt.wantInsecure {
			t.Errorf("collector(%q) = %q, %v; want %q, %v", tt.endpoint, host, insecure, tt.wantHost, tt.wantInsecure)
		}
	}
}
