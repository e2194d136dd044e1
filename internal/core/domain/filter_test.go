package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecstagger/internal/core/domain"
)

func exitCode(c int) *int { return &c }

func stopped(stopCode, reason string, containers ...domain.Container) domain.TaskStateChange {
	return domain.TaskStateChange{
		DesiredStatus: domain.TaskStatusStopped,
		LastStatus:    domain.TaskStatusStopped,
		StopCode:      stopCode,
		StoppedReason: reason,
		Containers:    containers,
	}
}

func TestUpstreamFilter_Matches(t *testing.T) {
	tests := []struct {
		name   string
		detail domain.TaskStateChange
		want   bool
	}{
		{
			name:   "essential container exited non zero",
			detail: stopped("EssentialContainerExited", "Essential container in task exited", domain.Container{ExitCode: exitCode(1)}),
			want:   true,
		},
		{
			name: "essential container exited with one failing sidecar",
			detail: stopped("EssentialContainerExited", "Essential container in task exited",
				domain.Container{ExitCode: exitCode(0)}, domain.Container{ExitCode: exitCode(137)}),
			want: true,
		},
		{
			name:   "essential container exited cleanly",
			detail: stopped("EssentialContainerExited", "Essential container in task exited", domain.Container{ExitCode: exitCode(0)}),
			want:   false,
		},
		{
			name:   "essential container without exit code",
			detail: stopped("EssentialContainerExited", "Essential container in task exited", domain.Container{}),
			want:   false,
		},
		{
			name:   "task failed to start",
			detail: stopped("TaskFailedToStart", "whatever"),
			want:   true,
		},
		{
			name:   "error code in reason",
			detail: stopped("UserInitiated", "CannotPullContainerError: ref not found"),
			want:   true,
		},
		{
			name:   "user initiated stop",
			detail: stopped("UserInitiated", "Task stopped by user"),
			want:   false,
		},
		{
			name: "task still running",
			detail: domain.TaskStateChange{
				DesiredStatus: domain.TaskStatusStopped,
				LastStatus:    "RUNNING",
				StopCode:      "TaskFailedToStart",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.UpstreamFilter{}.Matches(tt.detail))
		})
	}
}

func TestUpstreamFilter_Pattern(t *testing.T) {
	data, err := json.Marshal(domain.UpstreamFilter{}.Pattern())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"source": ["aws.ecs"],
		"detail-type": ["ECS Task State Change"],
		"detail": {
			"desiredStatus": ["STOPPED"],
			"lastStatus": ["STOPPED"],
			"$or": [
				{"stopCode": ["EssentialContainerExited"], "containers": {"exitCode": [{"anything-but": 0}]}},
				{"stopCode": ["TaskFailedToStart"]},
				{"stoppedReason": [{"wildcard": "*Error:*"}]}
			]
		}
	}`, string(data))
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"*Error:*", "OutOfMemoryError: killed", true},
		{"*Error:*", "Error:", true},
		{"*Error:*", "error: lowercase", false},
		{"*Error:*", "Task stopped by user", false},
		{"exact", "exact", true},
		{"exact", "exactly", false},
		{"a*b", "ab", true},
		{"a*b", "axxb", true},
		{"a*a", "a", false},
		{"*", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MatchWildcard(tt.pattern, tt.input))
		})
	}
}

func TestUpstreamFilter_MatchesEvent(t *testing.T) {
	ev := domain.TaskStopEvent{
		Source:     domain.EventSourceECS,
		DetailType: domain.DetailTypeTaskStateChange,
		Detail:     stopped(domain.StopCodeTaskFailedToStart, ""),
	}
	f := domain.UpstreamFilter{}
	assert.True(t, f.MatchesEvent(ev))

	ev.Source = "aws.ec2"
	assert.False(t, f.MatchesEvent(ev))
}
