package otel

import (
	"context"
	"testing"
)

func TestNewProviders_EmptyEndpoint(t *testing.T) {
	p, err := NewProviders(context.Background(), "", "usip", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if p.TracerProvider == nil || p.MeterProvider == nil {
		t.Fatal("providers should be non-nil even when export is disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProviders_BlankEndpoint(t *testing.T) {
	p, err := NewProviders(context.Background(), "   ", "usip", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProviders_MissingHost(t *testing.T) {
	if _, err := NewProviders(context.Background(), "http://", "usip", false); err == nil {
		t.Error("NewProviders should reject an endpoint without a host")
	}
}

func TestNewProviders_ConfiguresExport(t *testing.T) {
	ctx := context.Background()
	p, err := NewProviders(ctx, "localhost:4317", "usip", true)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	// No collector is running; shutdown must still release the exporters.
	shutdownCtx, cancel := context.WithCancel(ctx)
	cancel()
	_ = p.Shutdown(shutdownCtx)
}
