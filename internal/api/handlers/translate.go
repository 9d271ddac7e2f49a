package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/logging"
	"github.com/file-translator/file-translator/internal/translate"
	"github.com/file-translator/file-translator/internal/workflow"
)

const (
	HeaderWarning = "X-Translation-Warning"
	HeaderRunID   = "X-Translation-Id"

	// uploads above this size are spooled to disk by the multipart parser
	multipartMemory = 32 << 20
)

type TranslateHandler struct {
	controller *workflow.Controller
	log        zerolog.Logger
}

func NewTranslateHandler(controller *workflow.Controller, log zerolog.Logger) *TranslateHandler {
	return &TranslateHandler{
		controller: controller,
		log:        logging.Component(log, "translate-handler"),
	}
}

// Translate runs the uploaded file through the workflow and answers with the
// artifact as an attachment, or a JSON error.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		jsonResponse(w, ErrorResponse{Error: "invalid upload: " + err.Error(), Kind: string(workflow.KindInput)}, http.StatusBadRequest)
		return
	}

	locale, err := translate.ParseLocale(r.FormValue("target_language"))
	if err != nil {
		jsonResponse(w, ErrorResponse{Error: err.Error(), Kind: string(workflow.KindInput)}, http.StatusBadRequest)
		return
	}
	format, err := encode.ParseFormat(r.FormValue("output_format"))
	if err != nil {
		jsonResponse(w, ErrorResponse{Error: err.Error(), Kind: string(workflow.KindInput)}, http.StatusBadRequest)
		return
	}

	upload, err := readUpload(r)
	if err != nil {
		jsonResponse(w, ErrorResponse{Error: "invalid upload: " + err.Error(), Kind: string(workflow.KindInput)}, http.StatusBadRequest)
		return
	}

	id := uuid.New()
	w.Header().Set(HeaderRunID, id.String())
	ui := &httpInteraction{w: w}
	res := h.controller.Run(r.Context(), workflow.Submission{
		ID:     id,
		Upload: upload,
		Locale: locale,
		Format: format,
	}, ui)

	if res.Err == nil {
		return
	}
	if ui.sent {
		// headers are gone; the client sees a truncated download
		h.log.Error().Err(res.Err).Str("run", res.ID.String()).Msg("artifact delivery failed")
		return
	}

	var werr *workflow.Error
	kind, stage := "", ""
	if errors.As(res.Err, &werr) {
		kind, stage = string(werr.Kind), string(werr.Stage)
	}
	msg := res.Err.Error()
	if len(ui.errors) > 0 {
		msg = ui.errors[len(ui.errors)-1]
	}
	jsonResponse(w, ErrorResponse{
		Error:    msg,
		Kind:     kind,
		Stage:    stage,
		Messages: ui.messages,
	}, statusFor(res.Err))
}

// readUpload returns nil when the form carries no file.
func readUpload(r *http.Request) (*document.Upload, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", header.Filename, err)
	}
	return &document.Upload{Name: header.Filename, Data: data}, nil
}

func statusFor(err error) int {
	var werr *workflow.Error
	if !errors.As(err, &werr) {
		return http.StatusInternalServerError
	}
	switch werr.Kind {
	case workflow.KindInput:
		if errors.Is(err, document.ErrUnsupportedFormat) {
			return http.StatusUnsupportedMediaType
		}
		return http.StatusBadRequest
	case workflow.KindTranslation:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// httpInteraction collects banners for the JSON error body and streams the
// artifact when one is offered.
type httpInteraction struct {
	w        http.ResponseWriter
	messages []string
	errors   []string
	warnings []string
	sent     bool
}

func (h *httpInteraction) Info(msg string)    { h.messages = append(h.messages, msg) }
func (h *httpInteraction) Success(msg string) { h.messages = append(h.messages, msg) }

func (h *httpInteraction) Warn(msg string) {
	h.messages = append(h.messages, msg)
	h.warnings = append(h.warnings, msg)
}

func (h *httpInteraction) Error(msg string) {
	h.messages = append(h.messages, msg)
	h.errors = append(h.errors, msg)
}

func (h *httpInteraction) Offer(a *encode.Artifact) error {
	hdr := h.w.Header()
	hdr.Set("Content-Type", contentType(a))
	hdr.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	hdr.Set("Content-Length", strconv.Itoa(len(a.Data)))
	if len(h.warnings) > 0 {
		hdr.Set(HeaderWarning, strings.Join(h.warnings, " "))
	}
	h.sent = true
	h.w.WriteHeader(http.StatusOK)
	_, err := h.w.Write(a.Data)
	return err
}

func contentType(a *encode.Artifact) string {
	if strings.HasPrefix(a.MediaType, "text/") {
		return a.MediaType + "; charset=utf-8"
	}
	return a.MediaType
}
