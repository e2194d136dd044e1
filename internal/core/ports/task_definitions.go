// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/ecstagger/internal/core/domain"
)

// TaskDefinitionDescriber resolves task definitions against the control plane.
//
//go:generate mockgen -source=task_definitions.go -destination=mocks/mock_task_definitions.go -package=mocks
type TaskDefinitionDescriber interface {
	// DescribeTaskDefinition returns the task definition identified by arn, including its tags.
	// It blocks until the control plane answers or ctx is done.
	DescribeTaskDefinition(ctx context.Context, arn string) (*domain.TaskDefinition, error)
}
