package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecstagger/cmd/ecstagger/commands"
	"go.trai.ch/ecstagger/internal/adapters/eventbridge"
	"go.trai.ch/ecstagger/internal/adapters/telemetry"
	"go.trai.ch/ecstagger/internal/app"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const taskDefArn = "arn:aws:ecs:us-east-1:123:task-definition/api:7"

const eventTemplate = `{"id":"%ID%","source":"aws.ecs","detail-type":"ECS Task State Change","detail":{` +
	`"clusterArn":"arn:aws:ecs:us-east-1:123:cluster/prod","group":"service:api",` +
	`"taskArn":"arn:aws:ecs:us-east-1:123:task/prod/%ID%","taskDefinitionArn":"` + taskDefArn + `",` +
	`"stopCode":"%CODE%","desiredStatus":"STOPPED","lastStatus":"STOPPED"}}`

func event(id, stopCode string) string {
	return strings.NewReplacer("%ID%", id, "%CODE%", stopCode).Replace(eventTemplate)
}

func noComponents(t *testing.T) commands.ComponentsLoader {
	t.Helper()
	return func(context.Context) (*app.Components, error) {
		t.Fatal("components must not be built")
		return nil, nil
	}
}

func runCLI(t *testing.T, cli *commands.CLI, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cli.SetOutput(out)
	cli.SetInput(strings.NewReader(stdin))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reason with code",
			args: []string{"classify", "--stop-code", "TaskFailedToStart", "--reason", "OutOfMemoryError: container killed: oom"},
			want: `{"error_code":"OutOfMemoryError","error_message":"container killed: oom"}`,
		},
		{
			name: "stop code only",
			args: []string{"classify", "--stop-code", "EssentialContainerExited"},
			want: `{"error_code":"EssentialContainerExited","error_message":"Essential container in task exited"}`,
		},
		{
			name: "nothing known",
			args: []string{"classify"},
			want: `{"error_code":"UnknownError","error_message":"An unknown error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, commands.New(noComponents(t)), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestPattern(t *testing.T) {
	out, err := runCLI(t, commands.New(noComponents(t)), "", "pattern")
	require.NoError(t, err)

	var pattern map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &pattern))
	assert.Equal(t, []any{"aws.ecs"}, pattern["source"])
	assert.Equal(t, []any{"ECS Task State Change"}, pattern["detail-type"])

	detail, ok := pattern["detail"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, detail["$or"], 3)
}

func TestMatch(t *testing.T) {
	stdin := event("a", "TaskFailedToStart") + "\n" +
		event("b", "UserInitiated") + "\n" +
		`{"id":"c"}` + "\n"

	out, err := runCLI(t, commands.New(noComponents(t)), stdin, "match")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"origin":"-#0","event_id":"a","matches":true}`, lines[0])
	assert.JSONEq(t, `{"origin":"-#1","event_id":"b","matches":false}`, lines[1])
	assert.Contains(t, lines[2], `"error":`)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, commands.New(noComponents(t)), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ecstagger version dev"), out)
}

func newComponents(t *testing.T) (*app.Components, *mocks.MockTaskDefinitionDescriber, *mocks.MockRecordEmitter, *mocks.MockEventSource) {
	t.Helper()
	ctrl := gomock.NewController(t)

	describer := mocks.NewMockTaskDefinitionDescriber(ctrl)
	emitter := mocks.NewMockRecordEmitter(ctrl)
	source := mocks.NewMockEventSource(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	logger.EXPECT().With(gomock.Any()).Return(logger).AnyTimes()

	cfg := domain.DefaultConfig()
	handler := app.New(describer, emitter, telemetry.NewNoOpTracer(), logger)
	return app.NewComponents(&cfg, logger, handler, source, eventbridge.NewFileSourceFactory(logger)), describer, emitter, source
}

func TestReplay(t *testing.T) {
	components, describer, emitter, _ := newComponents(t)

	describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(&domain.TaskDefinition{Tags: []domain.Tag{{Key: "owner", Value: "team-a"}}}, nil).
		Times(2)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	cli := commands.New(func(context.Context) (*app.Components, error) { return components, nil })
	stdin := "[" + event("a", "TaskFailedToStart") + "," + event("b", "EssentialContainerExited") + "]"

	_, err := runCLI(t, cli, stdin, "replay", "--concurrency", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, components.Config.Replay.Concurrency)
}

func TestReplay_Failure(t *testing.T) {
	components, describer, emitter, _ := newComponents(t)

	describer.EXPECT().DescribeTaskDefinition(gomock.Any(), taskDefArn).
		Return(nil, errors.New("AccessDeniedException"))
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	cli := commands.New(func(context.Context) (*app.Components, error) { return components, nil })
	_, err := runCLI(t, cli, event("a", "TaskFailedToStart"), "replay")
	require.ErrorIs(t, err, domain.ErrReplayFailed)
}

func TestServe(t *testing.T) {
	components, _, _, source := newComponents(t)
	source.EXPECT().Start(gomock.Any(), components.Handler).Return(nil)

	cli := commands.New(func(context.Context) (*app.Components, error) { return components, nil })
	_, err := runCLI(t, cli, "", "serve")
	require.NoError(t, err)
}

func TestServe_InitError(t *testing.T) {
	initErr := errors.Join(domain.ErrConfigInvalid, errors.New("log.format"))
	cli := commands.New(func(context.Context) (*app.Components, error) { return nil, initErr })

	_, err := runCLI(t, cli, "", "serve")
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
}
