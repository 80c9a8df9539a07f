package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/loancalc-go/internal/cache"
	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/validators"
)

type failingCache struct {
	sets int
}

func (f *failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (f *failingCache) Set(context.Context, string, string) error {
	f.sets++
	return errors.New("connection refused")
}

func (f *failingCache) Close() error { return nil }

func newService(c cache.Cache) *Service {
	return New(c, noop.NewTracerProvider().Tracer("test"))
}

func TestService_CalculateStoresResult(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory(time.Minute)
	svc := newService(mem)

	result := svc.Calculate(ctx, SourceAPI, calculations.CalculatorInputs{AmountText: "100000", RatePercentText: "6", TermYearsText: "30"})
	require.True(t, result.OK())
	assert.Equal(t, "599.55", result.Success.MonthlyPayment.StringFixed(2))

	value, ok, err := mem.Get(ctx, cache.Key(100000, 0.06/12, 360))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "599.55", value)
}

func TestService_CalculateUsesCache(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory(time.Minute)
	svc := newService(mem)

	in := calculations.CalculatorInputs{AmountText: "250000", RatePercentText: "4.5", TermYearsText: "30"}
	first := svc.Calculate(ctx, SourceAPI, in)
	require.True(t, first.OK())

	// "250000.0" разбирается в то же число и попадает в ту же запись
	second := svc.Calculate(ctx, SourceAPI, calculations.CalculatorInputs{AmountText: "250000.0", RatePercentText: "4.50", TermYearsText: "30"})
	require.True(t, second.OK())
	assert.Equal(t, first.Display(), second.Display())
	assert.Equal(t, 1, mem.Len())
}

func TestService_CalculateInvalidSkipsCache(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory(time.Minute)
	svc := newService(mem)

	result := svc.Calculate(ctx, SourceForm, calculations.CalculatorInputs{AmountText: "abc", RatePercentText: "5", TermYearsText: "10"})
	require.False(t, result.OK())
	assert.Equal(t, calculations.InvalidInputMessage, result.Failure.Message)
	assert.Equal(t, 0, mem.Len())
}

func TestService_CacheFailuresIgnored(t *testing.T) {
	fc := &failingCache{}
	svc := newService(fc)

	result := svc.Calculate(context.Background(), SourceCLI, calculations.CalculatorInputs{AmountText: "100000", RatePercentText: "6", TermYearsText: "30"})
	require.True(t, result.OK())
	assert.Equal(t, "Monthly Payment: $599.55", result.Display())
	assert.Equal(t, 1, fc.sets)
}

func TestService_CorruptCacheValueRecomputes(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory(time.Minute)
	require.NoError(t, mem.Set(ctx, cache.Key(100000, 0.06/12, 360), "not-a-number"))
	svc := newService(mem)

	result := svc.Calculate(ctx, SourceAPI, calculations.CalculatorInputs{AmountText: "100000", RatePercentText: "6", TermYearsText: "30"})
	require.True(t, result.OK())
	assert.Equal(t, "599.55", result.Success.MonthlyPayment.StringFixed(2))
}

func TestService_Schedule(t *testing.T) {
	svc := newService(cache.Nop{})

	result, err := svc.Schedule(context.Background(), SourceAPI, calculations.CalculatorInputs{AmountText: "12000", RatePercentText: "12", TermYearsText: "1"})
	require.NoError(t, err)
	assert.Len(t, result.Schedule, 12)

	_, err = svc.Schedule(context.Background(), SourceAPI, calculations.CalculatorInputs{AmountText: "12000", RatePercentText: "0", TermYearsText: "1"})
	assert.True(t, errors.Is(err, validators.ErrInvalidLoanInput))
}
