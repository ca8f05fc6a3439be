package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/adjustment-ledger-api/pkg/config"
)

// NewTracerProvider crea el proveedor de trazas y lo registra como global.
// Con endpoint OTLP configurado exporta por HTTP; sin endpoint las trazas no salen del proceso.
func NewTracerProvider(ctx context.Context, cfg config.TelemetryConfig) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	}

	if cfg.Endpoint != "" {
		exporter, err := otlptracehttp.New(ctx, endpointOptions(cfg.Endpoint)...)
		if err != nil {
			return nil, fmt.Errorf("crear exportador OTLP: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// tracesPath ruta OTLP/HTTP de trazas cuando la URL base no trae una.
const tracesPath = "/v1/traces"

// endpointOptions acepta una URL base (http://collector:4318, como OTEL_EXPORTER_OTLP_ENDPOINT)
// o host:port, que se trata como HTTP sin TLS.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		if u, err := url.Parse(endpoint); err == nil && strings.TrimSuffix(u.Path, "/") == "" {
			u.Path = tracesPath
			endpoint = u.String()
		}
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// End cierra el span registrando el error, si lo hay.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SKU atributo estándar para spans del ledger.
func SKU(sku string) attribute.KeyValue {
	return attribute.String("sku", sku)
}

// TransactionID atributo estándar para spans del ledger.
func TransactionID(id int64) attribute.KeyValue {
	return attribute.Int64("transaction_id", id)
}
