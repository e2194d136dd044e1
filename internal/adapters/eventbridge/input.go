package eventbridge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/zerr"
)

// StdinPath selects standard input as a replay input.
const StdinPath = "-"

// Envelope is one decoded input document together with its origin.
type Envelope struct {
	// Origin is "<path>#<index>" and identifies the document in log output.
	Origin string
	Event  domain.TaskStopEvent
	// Err is set when the document could not be decoded into an event.
	Err error
}

// LoadEvents reads every document from paths, or from stdin when paths is empty.
// Undecodable documents are returned with Err set; unreadable inputs fail the whole load.
func LoadEvents(paths []string, stdin io.Reader) ([]Envelope, error) {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}

	var out []Envelope
	for _, path := range paths {
		data, err := readInput(path, stdin)
		if err != nil {
			return nil, errors.Join(domain.ErrReplayInputFailed, zerr.With(zerr.Wrap(err, "read input"), "path", path))
		}

		docs, err := splitDocuments(data)
		for i, doc := range docs {
			env := Envelope{Origin: fmt.Sprintf("%s#%d", path, i)}
			env.Event, env.Err = DecodeEvent(doc)
			out = append(out, env)
		}
		if err != nil {
			out = append(out, Envelope{
				Origin: fmt.Sprintf("%s#%d", path, len(docs)),
				Err:    errors.Join(domain.ErrMalformedEvent, zerr.Wrap(err, "split input documents")),
			})
		}
	}

	return out, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
