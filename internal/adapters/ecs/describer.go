// Package ecs resolves task definitions through the Amazon ECS control plane.
package ecs

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/zerr"
)

// API is the subset of the ECS client used by the Describer.
type API interface {
	DescribeTaskDefinition(
		ctx context.Context,
		params *ecs.DescribeTaskDefinitionInput,
		optFns ...func(*ecs.Options),
	) (*ecs.DescribeTaskDefinitionOutput, error)
}

// Describer implements ports.TaskDefinitionDescriber on the ECS API.
type Describer struct {
	client  API
	timeout time.Duration
}

// NewDescriber creates a Describer. A zero timeout leaves the caller's deadline in charge.
func NewDescriber(client API, timeout time.Duration) *Describer {
	return &Describer{
		client:  client,
		timeout: timeout,
	}
}

// DescribeTaskDefinition fetches the task definition identified by arn together with its tags.
func (d *Describer) DescribeTaskDefinition(ctx context.Context, arn string) (*domain.TaskDefinition, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	out, err := d.client.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(arn),
		Include:        []types.TaskDefinitionField{types.TaskDefinitionFieldTags},
	})
	if err != nil {
		return nil, errors.Join(
			domain.ErrTaskDefinitionLookupFailed,
			zerr.With(zerr.Wrap(err, "ecs:DescribeTaskDefinition"), "task_definition", arn),
		)
	}

	def := &domain.TaskDefinition{
		Arn:  arn,
		Tags: make([]domain.Tag, 0, len(out.Tags)),
	}
	if td := out.TaskDefinition; td != nil {
		if v := aws.ToString(td.TaskDefinitionArn); v != "" {
			def.Arn = v
		}
		def.Family = aws.ToString(td.Family)
		def.Revision = td.Revision
	}
	for _, t := range out.Tags {
		def.Tags = append(def.Tags, domain.Tag{
			Key:   aws.ToString(t.Key),
			Value: aws.ToString(t.Value),
		})
	}

	return def, nil
}
