package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/ecstagger/internal/adapters/telemetry"
	"go.trai.ch/ecstagger/internal/app"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
	"go.trai.ch/ecstagger/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const taskDefArn = "arn:aws:ecs:us-east-1:123:task-definition/api:7"

func stoppedEvent(stopCode, reason string) domain.TaskStopEvent {
	return domain.TaskStopEvent{
		ID:         "evt-1",
		DetailType: domain.DetailTypeTaskStateChange,
		Source:     domain.EventSourceECS,
		Detail: domain.TaskStateChange{
			ClusterArn:        "arn:aws:ecs:us-east-1:123:cluster/prod",
			Group:             "service:api",
			TaskArn:           "arn:aws:ecs:us-east-1:123:task/prod/abc",
			TaskDefinitionArn: taskDefArn,
			StopCode:          stopCode,
			StoppedReason:     reason,
			DesiredStatus:     domain.TaskStatusStopped,
			LastStatus:        domain.TaskStatusStopped,
		},
	}
}

type fixture struct {
	describer *mocks.MockTaskDefinitionDescriber
	emitter   *mocks.MockRecordEmitter
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		describer: mocks.NewMockTaskDefinitionDescriber(ctrl),
		emitter:   mocks.NewMockRecordEmitter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) handler(tracer ports.Tracer) *app.Handler {
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	return app.New(f.describer, f.emitter, tracer, f.logger)
}

func TestHandle_EndToEnd(t *testing.T) {
	f := newFixture(t)

	f.describer.EXPECT().
		DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(&domain.TaskDefinition{
			Arn:  taskDefArn,
			Tags: []domain.Tag{{Key: "owner", Value: "team-a"}},
		}, nil)

	f.emitter.EXPECT().Emit(gomock.Any(), domain.Record{
		Cluster:      "prod",
		Service:      "api",
		TaskID:       "abc",
		ErrorCode:    "EssentialContainerExited",
		ErrorMessage: "Essential container in task exited",
		Tags:         map[string]string{"owner": "team-a"},
	}).Return(nil)

	err := f.handler(nil).Handle(context.Background(), stoppedEvent("EssentialContainerExited", "Task failed ELB health checks"))
	require.NoError(t, err)
}

func TestHandle_Classification(t *testing.T) {
	tests := []struct {
		name     string
		stopCode string
		reason   string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "reason carries code",
			stopCode: "TaskFailedToStart",
			reason:   "OutOfMemoryError: container killed: oom",
			wantCode: "OutOfMemoryError",
			wantMsg:  "container killed: oom",
		},
		{
			name:     "task failed to start",
			stopCode: "TaskFailedToStart",
			reason:   "Timeout waiting for network interface provisioning to complete.",
			wantCode: "TaskFailedToStart",
			wantMsg:  "Task failed to transition to a RUNNING state",
		},
		{
			name:     "unrecognized stop code",
			stopCode: "ServiceSchedulerInitiated",
			wantCode: "UnknownError",
			wantMsg:  "An unknown error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
				Return(&domain.TaskDefinition{Arn: taskDefArn}, nil)

			var got domain.Record
			f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, rec domain.Record) error {
					got = rec
					return nil
				})

			require.NoError(t, f.handler(nil).Handle(context.Background(), stoppedEvent(tt.stopCode, tt.reason)))
			assert.Equal(t, tt.wantCode, got.ErrorCode)
			assert.Equal(t, tt.wantMsg, got.ErrorMessage)
			assert.NotNil(t, got.Tags)
			assert.Empty(t, got.Tags)
		})
	}
}

func TestHandle_LookupErrorEmitsNothing(t *testing.T) {
	f := newFixture(t)

	cause := errors.New("ThrottlingException: rate exceeded")
	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).Return(nil, cause)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	err := f.handler(nil).Handle(context.Background(), stoppedEvent("EssentialContainerExited", ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskDefinitionLookupFailed))
	assert.True(t, errors.Is(err, cause))
}

func TestHandle_NilDefinition(t *testing.T) {
	f := newFixture(t)

	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).Return(nil, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.Record) error {
			assert.Equal(t, map[string]string{}, rec.Tags)
			return nil
		})

	require.NoError(t, f.handler(nil).Handle(context.Background(), stoppedEvent("TaskFailedToStart", "")))
}

func TestHandle_MalformedEventSkipsLookup(t *testing.T) {
	f := newFixture(t)
	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), gomock.Any()).Times(0)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	ev := stoppedEvent("EssentialContainerExited", "")
	ev.Detail.TaskDefinitionArn = ""
	ev.Detail.Group = ""

	err := f.handler(nil).Handle(context.Background(), ev)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedEvent))
	assert.Contains(t, err.Error(), "missing required detail fields")
}

func TestHandle_EmitError(t *testing.T) {
	f := newFixture(t)
	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(&domain.TaskDefinition{Arn: taskDefArn}, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("stdout closed"))

	err := f.handler(nil).Handle(context.Background(), stoppedEvent("TaskFailedToStart", ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordEmitFailed))
}

func TestHandle_Spans(t *testing.T) {
	f := newFixture(t)
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(recorder))

	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(nil, errors.New("AccessDeniedException"))

	err := f.handler(tracer).Handle(context.Background(), stoppedEvent("TaskFailedToStart", ""))
	require.Error(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	lookup, invocation := ended[0], ended[1]
	assert.Equal(t, domain.SpanLookupTaskDefinition, lookup.Name())
	assert.Equal(t, codes.Error, lookup.Status().Code)
	assert.Equal(t, invocation.SpanContext().SpanID(), lookup.Parent().SpanID())

	assert.Equal(t, domain.SpanHandleEvent, invocation.Name())
	assert.Equal(t, codes.Error, invocation.Status().Code)
}

func TestHandle_SpanAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), domain.SpanHandleEvent, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	tracer.EXPECT().Start(gomock.Any(), domain.SpanLookupTaskDefinition, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().SetAttribute("tag_count", 1)
	span.EXPECT().SetAttribute("error_code", "EssentialContainerExited")
	span.EXPECT().End().Times(2)

	f.describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(&domain.TaskDefinition{Tags: []domain.Tag{{Key: "owner", Value: "team-a"}}}, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.handler(tracer).Handle(context.Background(), stoppedEvent("EssentialContainerExited", "")))
}
