// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/agecalc/internal/app/form"
	"github.com/jsamuelsen11/agecalc/internal/domain"
	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/platform/telemetry"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// Compile-time check that AgeService implements ports.AgeService.
var _ ports.AgeService = (*AgeService)(nil)

const tracerName = "github.com/jsamuelsen11/agecalc/internal/app"

// BatchLimits bounds SubmitBatch.
type BatchLimits struct {
	// MaxItems is the largest accepted batch.
	MaxItems int
	// Workers is the number of items evaluated concurrently.
	Workers int
}

// DefaultBatchLimits is used when NewAgeService receives zero limits.
var DefaultBatchLimits = BatchLimits{MaxItems: 100, Workers: 8}

// AgeService implements ports.AgeService by driving a fresh form.Controller
// per submission. It adds tracing, metrics and structured logging around the
// form but contains no validation or date logic of its own.
type AgeService struct {
	clock   ports.Clock
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	limits  BatchLimits
}

// NewAgeService creates an AgeService. clock supplies "now" for every
// submission. A nil logger is replaced with a discarding one and nil metrics
// disable instrument recording.
func NewAgeService(clk ports.Clock, logger *slog.Logger, metrics *telemetry.Metrics, limits BatchLimits) *AgeService {
	if logger == nil {
		logger = logging.Discard()
	}
	if limits.MaxItems <= 0 {
		limits.MaxItems = DefaultBatchLimits.MaxItems
	}
	if limits.Workers <= 0 {
		limits.Workers = DefaultBatchLimits.Workers
	}
	return &AgeService{
		clock:   clk,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		limits:  limits,
	}
}

// Blank returns the form fields in their initial state.
func (s *AgeService) Blank() []age.FieldSpec {
	return age.NewFields()
}

// Submit applies the raw texts to a fresh form and submits it.
func (s *AgeService) Submit(ctx context.Context, in ports.AgeInput) (age.Submission, error) {
	if err := ctx.Err(); err != nil {
		return age.Submission{}, err
	}
	return s.submit(ctx, s.clock, in), nil
}

// SubmitBatch submits every input against one shared instant, at most
// limits.Workers at a time, and returns the submissions in input order.
func (s *AgeService) SubmitBatch(ctx context.Context, inputs []ports.AgeInput) ([]age.Submission, error) {
	if len(inputs) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"items": "at least one item is required",
		}}
	}
	if len(inputs) > s.limits.MaxItems {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"items": fmt.Sprintf("at most %d items are allowed", s.limits.MaxItems),
		}}
	}

	ctx, span := s.tracer.Start(ctx, "AgeService.SubmitBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(inputs))),
	)
	defer span.End()

	s.log(ctx).InfoContext(ctx, "submitting age batch", slog.Int("size", len(inputs)))

	frozen := clock.Fixed{At: s.clock.Now()}
	subs := make([]age.Submission, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.Workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			subs[i] = s.submit(gctx, frozen, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log(ctx).ErrorContext(ctx, "age batch interrupted",
			slog.String("operation", "SubmitBatch"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return subs, nil
}

func (s *AgeService) submit(ctx context.Context, clk ports.Clock, in ports.AgeInput) age.Submission {
	ctx, span := s.tracer.Start(ctx, "AgeService.Submit")
	defer span.End()

	c := form.New(clk)
	texts := map[age.FieldID]string{
		age.FieldDay:   in.Day,
		age.FieldMonth: in.Month,
		age.FieldYear:  in.Year,
	}
	for _, id := range age.FieldIDs() {
		if !c.Edit(id, texts[id]) {
			s.log(ctx).DebugContext(ctx, "ignored field input",
				slog.String("field", id.String()),
				slog.Int("length", len(texts[id])),
			)
		}
	}

	sub := c.Submit()
	s.record(ctx, span, sub)
	return sub
}

func (s *AgeService) record(ctx context.Context, span trace.Span, sub age.Submission) {
	failed := failedNames(sub.Outcome())

	result := telemetry.ResultSuccess
	if len(failed) > 0 {
		result = telemetry.ResultError
	}
	span.SetAttributes(telemetry.AttrResult.String(result))

	if s.metrics != nil {
		s.metrics.SubmissionTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
		for _, name := range failed {
			s.metrics.ValidationFailureTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrField.String(name)))
		}
	}

	if len(failed) > 0 {
		span.SetAttributes(attribute.StringSlice("age.failed_fields", failed))
		s.log(ctx).InfoContext(ctx, "age submission rejected",
			slog.String("operation", "Submit"),
			slog.Any("failed_fields", failed),
		)
		return
	}

	s.log(ctx).InfoContext(ctx, "age calculated", slog.String("operation", "Submit"))
}

// log prefers the request-scoped logger installed by the HTTP middleware.
func (s *AgeService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func failedNames(o age.Outcome) []string {
	ids := o.Failed()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
