package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	if Enabled() {
		t.Fatal("Enabled() with empty endpoint")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() = %v", err)
	}

	_, span := Tracer("test").Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("no-op tracer produced a recording span")
	}
	span.End()
}

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointEnv, "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() = false with endpoint set")
	}
}
