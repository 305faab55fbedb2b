package domain

import (
	"encoding/json"
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// ActivityTask is a single unit of work delivered by the task queue.
// It is consumed exactly once and never mutated.
type ActivityTask struct {
	// Token is the opaque handle used to report the outcome of this task.
	Token string
	// Activity is the activity type name, used as the routing key.
	Activity string
	// Params is the ordered list of input parameters. Only the first is used.
	Params []string
	// DecodeErr is set when the queue input could not be decoded. Such a task
	// fails without being routed.
	DecodeErr error
}

// HasParam reports whether the task carries an explicit parameter.
// A task without parameters is a query and expects a reply.
func (t *ActivityTask) HasParam() bool {
	return len(t.Params) > 0
}

// ParseParams decodes a queue input envelope into a parameter list.
//
// The envelope is a two element JSON array whose second element is the
// parameter list, e.g. ["[Ljava.lang.Object;", ["value"]]. An empty input
// yields no parameters.
func ParseParams(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal([]byte(input), &envelope); err != nil {
		return nil, errors.Join(ErrMalformedInput, zerr.Wrap(err, "input is not a JSON array"))
	}
	if len(envelope) != 2 {
		return nil, errors.Join(ErrMalformedInput, zerr.With(zerr.New("expected two element envelope"), "elements", len(envelope)))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(envelope[1], &raw); err != nil {
		return nil, errors.Join(ErrMalformedInput, zerr.Wrap(err, "parameter list is not a JSON array"))
	}

	params := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			// Non-string parameters are passed through as their JSON text.
			s = string(r)
		}
		params = append(params, s)
	}
	return params, nil
}

// TaskResult is the outcome of handling one ActivityTask.
type TaskResult struct {
	// Token identifies the task this result belongs to.
	Token string
	// Reply is the payload returned for query tasks. Nil for commands.
	Reply *string
	// Err is non-nil when the task failed.
	Err error
}

// Succeeded reports whether the task completed without error.
func (r TaskResult) Succeeded() bool {
	return r.Err == nil
}

// EncodeResult renders the reply as the JSON completion payload.
// Commands complete with "null".
func (r TaskResult) EncodeResult() string {
	if r.Reply == nil {
		return "null"
	}
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(*r.Reply); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
