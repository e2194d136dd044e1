// Package app implements the enrichment and emission pipeline of the tagger.
package app

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
	"go.trai.ch/zerr"
)

// Handler turns one task stop event into one emitted record.
type Handler struct {
	describer ports.TaskDefinitionDescriber
	emitter   ports.RecordEmitter
	tracer    ports.Tracer
	logger    ports.Logger
	validate  *validator.Validate
}

// New creates a new Handler.
func New(
	describer ports.TaskDefinitionDescriber,
	emitter ports.RecordEmitter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Handler{
		describer: describer,
		emitter:   emitter,
		tracer:    tracer,
		logger:    logger,
		validate:  v,
	}
}

// Handle validates ev, looks up its task definition tags, classifies the stop
// and emits exactly one record. Nothing is emitted when an error is returned.
func (h *Handler) Handle(ctx context.Context, ev domain.TaskStopEvent) (err error) {
	ctx, span := h.tracer.Start(ctx, domain.SpanHandleEvent, ports.WithAttribute("event_id", ev.ID))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := h.validateEvent(ev); err != nil {
		return err
	}
	detail := ev.Detail

	def, err := h.lookup(ctx, detail.TaskDefinitionArn)
	if err != nil {
		return err
	}

	classification := domain.Classify(detail.StopCode, detail.StoppedReason)
	span.SetAttribute("error_code", classification.Code)

	var tags []domain.Tag
	if def != nil {
		tags = def.Tags
	}
	rec := domain.NewRecord(detail, classification, tags)

	if err := h.emitter.Emit(ctx, rec); err != nil {
		if !errors.Is(err, domain.ErrRecordEmitFailed) {
			err = errors.Join(domain.ErrRecordEmitFailed, err)
		}
		return err
	}

	h.logger.Debug("record emitted",
		"ecs_task_id", rec.TaskID,
		"error_code", rec.ErrorCode,
		"tags", len(rec.Tags),
	)
	return nil
}

func (h *Handler) validateEvent(ev domain.TaskStopEvent) error {
	err := h.validate.Struct(ev.Detail)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(domain.ErrMalformedEvent, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return errors.Join(
		domain.ErrMalformedEvent,
		zerr.With(zerr.With(zerr.Wrap(err, "missing required detail fields"), "fields", strings.Join(fields, ",")), "event_id", ev.ID),
	)
}

func (h *Handler) lookup(ctx context.Context, arn string) (*domain.TaskDefinition, error) {
	ctx, span := h.tracer.Start(ctx, domain.SpanLookupTaskDefinition, ports.WithAttribute("task_definition", arn))
	defer span.End()

	def, err := h.describer.DescribeTaskDefinition(ctx, arn)
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrTaskDefinitionLookupFailed) {
			err = errors.Join(domain.ErrTaskDefinitionLookupFailed, zerr.With(zerr.Wrap(err, "describe task definition"), "task_definition", arn))
		}
		return nil, err
	}

	if def != nil {
		span.SetAttribute("tag_count", len(def.Tags))
	}
	return def, nil
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
