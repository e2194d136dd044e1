package domain

import "time"

const (
	// EventSourceECS is the EventBridge source of ECS lifecycle events.
	EventSourceECS = "aws.ecs"
	// DetailTypeTaskStateChange is the EventBridge detail-type of ECS task lifecycle events.
	DetailTypeTaskStateChange = "ECS Task State Change"
	// TaskStatusStopped is the terminal task status.
	TaskStatusStopped = "STOPPED"
)

// TaskStopEvent is one ECS task lifecycle notification as delivered by EventBridge.
// It is produced once by the platform and never mutated.
type TaskStopEvent struct {
	ID         string          `json:"id"`
	DetailType string          `json:"detail-type"`
	Source     string          `json:"source"`
	Account    string          `json:"account"`
	Time       time.Time       `json:"time"`
	Region     string          `json:"region"`
	Resources  []string        `json:"resources"`
	Detail     TaskStateChange `json:"detail"`
}

// TaskStateChange is the detail payload of an "ECS Task State Change" event.
// Only the identifiers are required; stop code and reason may legitimately be empty.
type TaskStateChange struct {
	ClusterArn        string      `json:"clusterArn"        validate:"required"`
	Group             string      `json:"group"             validate:"required"`
	TaskArn           string      `json:"taskArn"           validate:"required"`
	TaskDefinitionArn string      `json:"taskDefinitionArn" validate:"required"`
	StopCode          string      `json:"stopCode"`
	StoppedReason     string      `json:"stoppedReason"`
	DesiredStatus     string      `json:"desiredStatus"`
	LastStatus        string      `json:"lastStatus"`
	LaunchType        string      `json:"launchType"`
	AvailabilityZone  string      `json:"availabilityZone"`
	StoppedAt         string      `json:"stoppedAt"`
	Version           int64       `json:"version"`
	Containers        []Container `json:"containers"`
}

// Container is one container entry of a task state change.
type Container struct {
	Name         string `json:"name"`
	ContainerArn string `json:"containerArn"`
	LastStatus   string `json:"lastStatus"`
	Reason       string `json:"reason"`
	// ExitCode is nil when the container never ran.
	ExitCode *int `json:"exitCode"`
}
