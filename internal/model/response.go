package model

import (
	"fmt"
	"strconv"
	"strings"
)

// QuestionKey identifies a question by section index and question index. It is
// the typed form of the "s{section}_q{question}" string keys used by clients
// and by the Redis working set; the string form is a serialization detail at
// the boundary, never the identity used inside the scoring core.
type QuestionKey struct {
	Section  int
	Question int
}

// String renders the key in its wire form, e.g. "s0_q3".
func (k QuestionKey) String() string {
	return fmt.Sprintf("s%d_q%d", k.Section, k.Question)
}

// ParseQuestionKey parses a wire-form key. Returns an error for anything that
// is not exactly "s<int>_q<int>" with non-negative indices.
func ParseQuestionKey(s string) (QuestionKey, error) {
	rest, ok := strings.CutPrefix(s, "s")
	if !ok {
		return QuestionKey{}, fmt.Errorf("invalid response key %q", s)
	}
	secPart, qPart, ok := strings.Cut(rest, "_q")
	if !ok {
		return QuestionKey{}, fmt.Errorf("invalid response key %q", s)
	}
	sec, err := strconv.Atoi(secPart)
	if err != nil || sec < 0 {
		return QuestionKey{}, fmt.Errorf("invalid section index in key %q", s)
	}
	q, err := strconv.Atoi(qPart)
	if err != nil || q < 0 {
		return QuestionKey{}, fmt.Errorf("invalid question index in key %q", s)
	}
	return QuestionKey{Section: sec, Question: q}, nil
}

// ResponseSet is an immutable snapshot of recorded responses. A missing key
// means the question is unanswered.
type ResponseSet map[QuestionKey]string

// Get looks up the response for a (section, question) pair.
func (rs ResponseSet) Get(section, question int) (string, bool) {
	v, ok := rs[QuestionKey{Section: section, Question: question}]
	return v, ok
}

// ResponseSetFromStrings converts a string-keyed response map into a typed
// ResponseSet. Keys that do not parse are dropped rather than rejected:
// a malformed entry is equivalent to an unanswered question.
func ResponseSetFromStrings(raw map[string]string) ResponseSet {
	rs := make(ResponseSet, len(raw))
	for k, v := range raw {
		key, err := ParseQuestionKey(k)
		if err != nil {
			continue
		}
		rs[key] = v
	}
	return rs
}

// Strings converts the set back to its wire form for storage.
func (rs ResponseSet) Strings() map[string]string {
	out := make(map[string]string, len(rs))
	for k, v := range rs {
		out[k.String()] = v
	}
	return out
}
