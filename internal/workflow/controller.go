// Package workflow drives one upload through reading, translation and
// encoding, reporting progress to the user.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/logging"
	"github.com/file-translator/file-translator/internal/translate"
)

const (
	MsgNoFile       = "Please upload a file."
	MsgEmptyText    = "No text could be extracted from the uploaded file."
	MsgTranslating  = "Translating... please wait."
	MsgEmptyResult  = "The translation service returned an empty result."
	MsgDone         = "Translation completed!"
	MsgSRTStructure = "SRT output is plain text: the source file was not a subtitle file, so no cue numbers or timestamps are added."
)

// Controller runs submissions. It keeps no state between runs.
type Controller struct {
	translator translate.Translator
	encoder    *encode.Encoder
	log        zerolog.Logger
}

func NewController(t translate.Translator, enc *encode.Encoder, log zerolog.Logger) *Controller {
	return &Controller{
		translator: t,
		encoder:    enc,
		log:        logging.Component(log, "workflow"),
	}
}

// Engine returns the name of the configured translation engine.
func (c *Controller) Engine() string {
	return c.translator.Name()
}

// Run processes one submission to completion. Every failure ends the run and
// is reported through ui and the returned Result.
func (c *Controller) Run(ctx context.Context, sub Submission, ui Interaction) *Result {
	res := &Result{ID: sub.ID}
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.enter(StateIdle)
	log := c.log.With().Str("run", res.ID.String()).Logger()

	if sub.Upload == nil {
		return c.fail(res, ui, log, KindInput, errors.New(MsgNoFile), MsgNoFile)
	}

	// Reading
	res.enter(StateReading)
	log.Info().Str("file", sub.Upload.Name).Int("bytes", len(sub.Upload.Data)).Msg("reading upload")
	text, err := document.Extract(sub.Upload)
	if err != nil {
		return c.fail(res, ui, log, KindInput, err, fmt.Sprintf("Error reading file: %v", err))
	}
	if text.Blank() {
		return c.fail(res, ui, log, KindInput, errors.New("extracted text is empty"), MsgEmptyText)
	}

	// Translating
	res.enter(StateTranslating)
	ui.Info(MsgTranslating)
	log.Info().
		Str("engine", c.translator.Name()).
		Str("target", sub.Locale.String()).
		Int("chars", len(text.Content)).
		Msg("translating")
	task := translate.Start(ctx, c.translator, translate.NewRequest(text.Content, sub.Locale))
	translated, err := task.Wait()
	if err != nil {
		return c.fail(res, ui, log, KindTranslation, err, fmt.Sprintf("Translation failed: %v", err))
	}
	if strings.TrimSpace(translated) == "" {
		return c.fail(res, ui, log, KindTranslation, translate.ErrEmptyResult, MsgEmptyResult)
	}

	// Encoding
	res.enter(StateEncoding)
	artifact, err := c.encoder.Encode(translated, sub.Locale.String(), sub.Format)
	if err != nil {
		return c.fail(res, ui, log, KindEncoding, err, fmt.Sprintf("Error creating output file: %v", err))
	}
	if sub.Format == encode.FormatSRT && text.Source != document.FormatSRT {
		res.Warnings = append(res.Warnings, MsgSRTStructure)
		ui.Warn(MsgSRTStructure)
	}
	if err := ui.Offer(artifact); err != nil {
		return c.fail(res, ui, log, KindEncoding, err, fmt.Sprintf("Error delivering output file: %v", err))
	}

	res.Artifact = artifact
	res.enter(StateReady)
	ui.Success(MsgDone)
	log.Info().Str("filename", artifact.Filename).Int("bytes", len(artifact.Data)).Msg("translation ready")
	return res
}

func (c *Controller) fail(res *Result, ui Interaction, log zerolog.Logger, kind Kind, err error, msg string) *Result {
	stage := res.State
	res.Err = &Error{Kind: kind, Stage: stage, Err: err}
	res.enter(StateFailed)
	ui.Error(msg)
	log.Warn().Err(err).Str("kind", string(kind)).Str("stage", string(stage)).Msg("run failed")
	return res
}
