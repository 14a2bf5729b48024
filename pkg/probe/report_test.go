package probe

import (
	"errors"
	"testing"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]Entry
		want    Status
	}{
		{
			name:    "empty set is healthy",
			entries: map[string]Entry{},
			want:    StatusHealthy,
		},
		{
			name: "all healthy",
			entries: map[string]Entry{
				"db":    Healthy("ok"),
				"cache": Healthy("ok"),
			},
			want: StatusHealthy,
		},
		{
			name: "degraded dominates healthy",
			entries: map[string]Entry{
				"db":    Healthy("ok"),
				"cache": Degraded("slow"),
			},
			want: StatusDegraded,
		},
		{
			name: "unhealthy dominates everything",
			entries: map[string]Entry{
				"db":    Unhealthy("down", errors.New("connection refused")),
				"cache": Degraded("slow"),
				"queue": Healthy("ok"),
			},
			want: StatusUnhealthy,
		},
		{
			name: "single unhealthy",
			entries: map[string]Entry{
				"db": Unhealthy("down", nil),
			},
			want: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateStatus(tt.entries); got != tt.want {
				t.Errorf("AggregateStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
