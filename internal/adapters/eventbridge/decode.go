// Package eventbridge delivers EventBridge task state change events to an EventHandler.
package eventbridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/aws/aws-lambda-go/events"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/zerr"
)

// FromCloudWatchEvent converts the runtime envelope into a TaskStopEvent.
func FromCloudWatchEvent(e events.CloudWatchEvent) (domain.TaskStopEvent, error) {
	ev := domain.TaskStopEvent{
		ID:         e.ID,
		DetailType: e.DetailType,
		Source:     e.Source,
		Account:    e.AccountID,
		Time:       e.Time,
		Region:     e.Region,
		Resources:  e.Resources,
	}

	detail := bytes.TrimSpace(e.Detail)
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return ev, zerr.With(zerr.Wrap(domain.ErrMalformedEvent, "event has no detail"), "event_id", e.ID)
	}
	if err := json.Unmarshal(detail, &ev.Detail); err != nil {
		return ev, errors.Join(domain.ErrMalformedEvent, zerr.With(zerr.Wrap(err, "decode detail"), "event_id", e.ID))
	}
	return ev, nil
}

// DecodeEvent decodes one raw EventBridge envelope.
func DecodeEvent(data []byte) (domain.TaskStopEvent, error) {
	var e events.CloudWatchEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return domain.TaskStopEvent{}, errors.Join(domain.ErrMalformedEvent, zerr.Wrap(err, "decode envelope"))
	}
	return FromCloudWatchEvent(e)
}

// splitDocuments returns the raw JSON documents contained in data.
// A top-level array yields its elements; otherwise documents are read as a stream,
// which covers a single object as well as newline-delimited JSON.
func splitDocuments(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var docs []json.RawMessage
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var docs []json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var doc json.RawMessage
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}
}
