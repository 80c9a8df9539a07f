// Package service оборачивает чистый расчет кэшем, метриками и трейсингом.
package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/cache"
	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/metrics"
	"github.com/cloud-ru/loancalc-go/internal/validators"
)

// Источники вызова для метрик
const (
	SourceAPI  = "api"
	SourceForm = "form"
	SourceCLI  = "cli"
)

// Service калькулятор платежей с кэшем результатов
type Service struct {
	cache  cache.Cache
	tracer trace.Tracer
}

// New создает сервис. Ошибки кэша не влияют на результат расчета.
func New(c cache.Cache, tracer trace.Tracer) *Service {
	return &Service{cache: c, tracer: tracer}
}

// Calculate считает ежемесячный платеж
func (s *Service) Calculate(ctx context.Context, source string, in calculations.CalculatorInputs) calculations.CalculationResult {
	ctx, span := s.tracer.Start(ctx, "calculate")
	defer span.End()

	span.SetAttributes(
		attribute.String("source", source),
		attribute.String("amount", in.AmountText),
		attribute.String("rate", in.RatePercentText),
		attribute.String("term", in.TermYearsText),
	)

	params := calculations.ParseLoanParameters(in)
	key := ""
	if params.Validate() == nil {
		key = cache.Key(params.Principal, params.MonthlyRate, params.NumPayments)
		if result, ok := s.lookup(ctx, key); ok {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			s.record(span, source, result)
			return result
		}
	}

	result := calculations.Calculate(in)
	if result.OK() && key != "" {
		if err := s.cache.Set(ctx, key, result.Success.MonthlyPayment.StringFixed(2)); err != nil {
			zap.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}

	s.record(span, source, result)
	return result
}

func (s *Service) lookup(ctx context.Context, key string) (calculations.CalculationResult, bool) {
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		zap.L().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return calculations.CalculationResult{}, false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return calculations.CalculationResult{}, false
	}

	payment, err := decimal.NewFromString(value)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		zap.L().Warn("cache value is not a decimal", zap.String("key", key), zap.String("value", value))
		return calculations.CalculationResult{}, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return calculations.CalculationResult{Success: &calculations.Success{MonthlyPayment: payment}}, true
}

func (s *Service) record(span trace.Span, source string, result calculations.CalculationResult) {
	if result.OK() {
		payment, _ := result.Success.MonthlyPayment.Float64()
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_payment", payment),
		)
		metrics.Calculations.WithLabelValues(source, "success").Inc()
		return
	}

	field := validators.FieldOf(result.Failure.Err)
	span.SetAttributes(
		attribute.Bool("success", false),
		attribute.String("error", "validation_error"),
		attribute.String("field", field),
	)
	metrics.Calculations.WithLabelValues(source, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(field).Inc()
	zap.L().Debug("calculation rejected", zap.String("source", source), zap.String("field", field))
}

// Schedule строит график платежей
func (s *Service) Schedule(ctx context.Context, source string, in calculations.CalculatorInputs) (*calculations.ScheduleResult, error) {
	_, span := s.tracer.Start(ctx, "schedule")
	defer span.End()

	span.SetAttributes(
		attribute.String("source", source),
		attribute.String("amount", in.AmountText),
		attribute.String("rate", in.RatePercentText),
		attribute.String("term", in.TermYearsText),
	)

	result, err := calculations.CalculateSchedule(in)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		metrics.Calculations.WithLabelValues(source, "schedule_error").Inc()
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("months", result.Summary.Months),
		attribute.Float64("total_paid", result.Summary.TotalPaid),
	)
	metrics.Calculations.WithLabelValues(source, "success").Inc()
	return result, nil
}
