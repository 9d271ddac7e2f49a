package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/translate"
)

// State is the stage a run has reached.
type State string

const (
	StateIdle        State = "idle"
	StateReading     State = "reading"
	StateTranslating State = "translating"
	StateEncoding    State = "encoding"
	StateReady       State = "ready"
	StateFailed      State = "failed"
)

// Kind classifies a failed run.
type Kind string

const (
	KindInput       Kind = "input"
	KindTranslation Kind = "translation"
	KindEncoding    Kind = "encoding"
)

// Error is the terminal failure of one run.
type Error struct {
	Kind  Kind
	Stage State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Submission is what the user picked before pressing Translate.
type Submission struct {
	ID     uuid.UUID        // run id; a random one is assigned when zero
	Upload *document.Upload // nil when no file was chosen
	Locale translate.Locale
	Format encode.Format
}

// Interaction is the surface a run reports to. Offer hands over the finished
// artifact for download.
type Interaction interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Offer(a *encode.Artifact) error
}

// Result records one run.
type Result struct {
	ID       uuid.UUID
	State    State
	Trail    []State
	Artifact *encode.Artifact
	Warnings []string
	Err      error
}

// Ready reports whether an artifact was produced.
func (r *Result) Ready() bool {
	return r.State == StateReady
}

func (r *Result) enter(s State) {
	r.State = s
	r.Trail = append(r.Trail, s)
}
