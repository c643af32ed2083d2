package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCatalogPinger struct {
	err error
}

func (m *mockCatalogPinger) Ping(_ context.Context) error { return m.err }

type mockAnalyticsChecker struct {
	err error
}

func (m *mockAnalyticsChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCatalogPinger{}, &mockAnalyticsChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["catalog"] != CheckOK {
		t.Errorf("expected catalog ok, got %q", r.Checks["catalog"])
	}
	if r.Checks["analytics"] != CheckOK {
		t.Errorf("expected analytics ok, got %q", r.Checks["analytics"])
	}
}

func TestCheck_CatalogDown(t *testing.T) {
	svc := New(&mockCatalogPinger{err: errors.New("connection refused")}, &mockAnalyticsChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["catalog"] != CheckError {
		t.Errorf("expected catalog error, got %q", r.Checks["catalog"])
	}
}

func TestCheck_AnalyticsDown(t *testing.T) {
	svc := New(&mockCatalogPinger{}, &mockAnalyticsChecker{err: errors.New("disconnected")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["analytics"] != CheckError {
		t.Errorf("expected analytics error, got %q", r.Checks["analytics"])
	}
}

func TestCheck_NilAnalytics(t *testing.T) {
	svc := New(&mockCatalogPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["analytics"]; ok {
		t.Error("analytics check should be absent when not wired")
	}
}
