package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecstagger/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/adapters/ecs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/adapters/eventbridge" //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/adapters/sink"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
)

const (
	// HandlerNodeID is the unique identifier for the event Handler Graft node.
	HandlerNodeID graft.ID = "app.handler"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*Handler]{
		ID:        HandlerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ecs.NodeID,
			sink.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runHandlerNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			HandlerNodeID,
			eventbridge.LambdaNodeID,
			eventbridge.ReplayNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runHandlerNode(ctx context.Context) (*Handler, error) {
	describer, err := graft.Dep[ports.TaskDefinitionDescriber](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.RecordEmitter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(describer, emitter, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	handler, err := graft.Dep[*Handler](ctx)
	if err != nil {
		return nil, err
	}

	lambda, err := graft.Dep[*eventbridge.LambdaSource](ctx)
	if err != nil {
		return nil, err
	}

	replays, err := graft.Dep[ports.ReplaySourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(cfg, log, handler, lambda, replays), nil
}
