// README: Streaming accumulator; assembles an itinerary from raw text increments.
package itinerary

import (
	"encoding/json"
	"regexp"
	"strings"

	"trippy/internal/stream"
)

// State of one accumulator instance. Idle until the first '{' arrives,
// Collecting while the object is open, Complete once a fully valid itinerary
// has been parsed. A stream that ends while still Collecting is reported by
// Finish as ErrNoItinerary.
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateComplete
)

// PartialUpdate carries day objects that became parseable before the outer
// itinerary object closed. The caller merges them into its own running state
// by index-aligned replacement (MergeDays); the accumulator owns nothing it
// has already emitted.
type PartialUpdate struct {
	Days []Day `json:"days"`
}

// Accumulator is the per-stream state machine. One instance serves exactly
// one response stream and is not safe for concurrent use; the transport must
// finish each Append before delivering the next increment.
type Accumulator struct {
	state  State
	chunks []string

	// lex persists across increments so a string literal split over a chunk
	// boundary keeps its in-string and escape state. It is the same state
	// machine ScanBalance runs, carried instead of re-derived, and it gates
	// the terminal parse: no full-buffer work until every brace has closed.
	lex stream.Lexer

	pending  *PartialUpdate
	result   *Itinerary
	sentDays int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) State() State { return a.state }

// Raw returns the text buffered so far, for degraded text-only fallbacks.
func (a *Accumulator) Raw() string { return strings.Join(a.chunks, "") }

// Append consumes one stream increment. Increments arriving before the first
// '{' are discarded; everything from that brace onward is buffered. After the
// buffer grows, Append re-attempts partial and terminal extraction; results
// are picked up via NextUpdate and Result.
func (a *Accumulator) Append(text string) {
	if a.state == StateComplete || text == "" {
		return
	}
	if a.state == StateIdle {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			return
		}
		text = text[open:]
		a.state = StateCollecting
	}

	a.chunks = append(a.chunks, text)
	for i := 0; i < len(text); i++ {
		a.lex.Consume(text[i])
	}
	a.validate()
}

// NextUpdate returns the partial update produced by the most recent Append,
// or nil. Pull-based on purpose: the surrounding transport adapts this into
// whatever event mechanism it prefers, and the core stays callback-free.
func (a *Accumulator) NextUpdate() *PartialUpdate {
	u := a.pending
	a.pending = nil
	return u
}

// Result returns the terminal itinerary once the accumulator is Complete.
func (a *Accumulator) Result() *Itinerary { return a.result }

// Finish declares the underlying stream ended. It returns the terminal
// itinerary, or ErrNoItinerary when the stream closed before one validated.
func (a *Accumulator) Finish() (*Itinerary, error) {
	if a.state == StateComplete {
		return a.result, nil
	}
	return nil, ErrNoItinerary
}

// validate joins the buffer, cleans streaming artifacts, and attempts the two
// extraction strategies: complete day objects first (partial emission), then
// a full parse with terminal validation. Parse failures of any kind simply
// leave the accumulator collecting.
func (a *Accumulator) validate() {
	joined := cleanArtifacts(a.Raw())

	if days := extractDays(joined); len(days) > a.sentDays {
		a.pending = &PartialUpdate{Days: days}
		a.sentDays = len(days)
	}

	// Carried lexer state is the completion gate: while a brace opened on
	// this stream is still unclosed (or a string literal still open), no
	// terminal parse can succeed, so the full-buffer scan is skipped.
	if a.lex.Depth != 0 || a.lex.InString {
		return
	}

	end, ok := stream.ScanBalance(joined)
	if !ok {
		return
	}
	var it Itinerary
	if err := json.Unmarshal([]byte(joined[:end+1]), &it); err != nil {
		// Balanced but syntactically invalid; treated exactly like incomplete.
		return
	}
	if err := Validate(&it); err != nil {
		return
	}
	a.state = StateComplete
	a.result = &it
	a.pending = nil
}

var (
	fenceRe         = regexp.MustCompile("```(?:json)?")
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// cleanArtifacts tolerates the usual streaming noise: markdown fences,
// ragged whitespace runs, and trailing commas left before a closing bracket.
func cleanArtifacts(s string) string {
	s = fenceRe.ReplaceAllString(s, "")
	s = whitespaceRunRe.ReplaceAllString(s, " ")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// extractDays pulls every complete day object out of the days array, whether
// or not the outer itinerary has closed yet. Candidates are cut brace-aware
// (never by regex alone, since activities nest objects) and must unmarshal as
// a Day with a date and an activities array to count.
func extractDays(s string) []Day {
	arr := daysArrayStart(s)
	if arr < 0 {
		return nil
	}

	var days []Day
	rest := s[arr:]
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		// The days array closed before another element started.
		if closed := strings.IndexByte(rest[:open], ']'); closed >= 0 {
			break
		}
		end, ok := stream.ScanBalance(rest[open:])
		if !ok {
			break
		}
		candidate := rest[open : open+end+1]
		var d Day
		if err := json.Unmarshal([]byte(candidate), &d); err == nil &&
			strings.TrimSpace(d.Date) != "" && d.Activities != nil {
			days = append(days, d)
		}
		rest = rest[open+end+1:]
	}
	return days
}

// daysArrayStart returns the index just past the '[' of the "days" array, or
// -1 while it has not streamed in yet.
func daysArrayStart(s string) int {
	key := strings.Index(s, `"days"`)
	if key < 0 {
		return -1
	}
	open := strings.IndexByte(s[key:], '[')
	if open < 0 {
		return -1
	}
	return key + open + 1
}
