package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this service's spans in trace backends.
const instrumentationName = "nft-stats"

var tracer = otel.Tracer(instrumentationName)

// GetTracer returns the service tracer. Handlers and repositories use it
// to open child spans under the request span started by Middleware.
func GetTracer() trace.Tracer {
	return tracer
}
