package domain

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// MaxFailureReason is the longest reason the queue accepts, in characters.
const MaxFailureReason = 256

// Failure is the queue-visible report for a failed task.
type Failure struct {
	// Reason is the single line failure message, cut to MaxFailureReason.
	Reason string
	// Details is the JSON array [exceptionClass, {"message": message}] with
	// the full message.
	Details string
}

// NewFailure converts err into a failure report using the given exception class.
func NewFailure(class string, err error) Failure {
	msg := FailureMessage(err)
	payload := []any{class, map[string]string{"message": msg}}
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	reason := truncate(msg, MaxFailureReason)
	if encErr := enc.Encode(payload); encErr != nil {
		return Failure{Reason: reason, Details: "[]"}
	}
	return Failure{Reason: reason, Details: strings.TrimSuffix(buf.String(), "\n")}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// FailureMessage flattens err into a single line.
// Joined errors render one per line; they are collapsed with ": ".
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	lines := strings.Split(err.Error(), "\n")
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ": ")
}
