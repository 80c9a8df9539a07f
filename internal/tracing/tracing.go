package tracing

import (
	"context"

	"github.com/rotisserie/eris"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/config"
)

// Version сервиса в ресурсе трейсов
const Version = "1.0.0"

// InitTracing инициализирует OpenTelemetry трейсинг и возвращает трейсер и функцию остановки
func InitTracing(ctx context.Context, cfg config.OTELConfig) (trace.Tracer, func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(Version),
		),
	)
	if err != nil {
		return nil, nil, eris.Wrap(err, "tracing: create resource")
	}

	var exporter sdktrace.SpanExporter

	if cfg.Endpoint != "" {
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.Endpoint),
		)
		if err != nil {
			return nil, nil, eris.Wrap(err, "tracing: create OTLP exporter")
		}
		zap.L().Info("OpenTelemetry OTLP export enabled", zap.String("endpoint", cfg.Endpoint))
	} else {
		// Без endpoint спаны создаются, но никуда не отправляются
		exporter = &noopExporter{}
		zap.L().Info("OpenTelemetry enabled without export (set otel.endpoint to export)")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Tracer(cfg.ServiceName), tp.Shutdown, nil
}

// noopExporter - пустой экспортер для локальной разработки
type noopExporter struct{}

func (e *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}
