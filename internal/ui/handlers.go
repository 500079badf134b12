package ui

import (
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/ukaji3/dbsources-go/pkg/dbsources"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/output"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// uploadField is the multipart form field carrying the workbook.
const uploadField = "file"

var (
	errMissingUpload  = errors.New("no file uploaded")
	errUploadTooLarge = errors.New("upload exceeds size limit")
)

// Handlers serves the upload, preview, and download endpoints.
type Handlers struct {
	opts         dbsources.Options
	maxUpload    int64
	previewLimit int
	logger       *slog.Logger
}

// NewHandlers creates the UI handlers.
func NewHandlers(opts dbsources.Options, maxUpload int64, previewLimit int, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		opts:         opts,
		maxUpload:    maxUpload,
		previewLimit: previewLimit,
		logger:       logger,
	}
}

// pageData is the view model of the index template.
type pageData struct {
	Error       string
	Notice      string
	Table       *models.Table
	Rows        [][]string
	Truncated   bool
	DownloadURL template.URL
}

// HandleIndex renders the empty upload form.
func (h *Handlers) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, pageData{})
}

// HandlePreview processes the upload and renders the preview with an
// embedded download link.
func (h *Handlers) HandlePreview(w http.ResponseWriter, r *http.Request) {
	table, status, err := h.process(w, r)
	if err != nil {
		data := pageData{Error: userMessage(err)}
		if errors.Is(err, dbsources.ErrNoDataSources) {
			data = pageData{Notice: userMessage(err)}
		}
		h.render(w, status, data)
		return
	}

	xlsx, err := output.XLSX(table)
	if err != nil {
		h.logger.Error("failed to build workbook", "error", err)
		h.render(w, http.StatusInternalServerError, pageData{Error: userMessage(err)})
		return
	}

	rows := table.Rows
	truncated := false
	if h.previewLimit > 0 && len(rows) > h.previewLimit {
		rows = rows[:h.previewLimit]
		truncated = true
	}

	h.render(w, http.StatusOK, pageData{
		Table:       table,
		Rows:        rows,
		Truncated:   truncated,
		DownloadURL: template.URL("data:" + output.XLSXContentType + ";base64," + base64.StdEncoding.EncodeToString(xlsx)),
	})
}

// HandleDownload processes the upload and responds with the workbook.
func (h *Handlers) HandleDownload(w http.ResponseWriter, r *http.Request) {
	table, status, err := h.process(w, r)
	if err != nil {
		http.Error(w, userMessage(err), status)
		return
	}

	xlsx, err := output.XLSX(table)
	if err != nil {
		h.logger.Error("failed to build workbook", "error", err)
		http.Error(w, userMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", output.XLSXContentType)
	w.Header().Set("Content-Disposition", contentDisposition(table.FileName))
	w.Header().Set("Content-Length", fmt.Sprint(len(xlsx)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsx)
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// process runs one extraction over the uploaded file and maps failures to
// an HTTP status.
func (h *Handlers) process(w http.ResponseWriter, r *http.Request) (*models.Table, int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("%w (%d bytes)", errUploadTooLarge, maxErr.Limit)
		}
		return nil, http.StatusBadRequest, fmt.Errorf("%w: %v", errMissingUpload, err)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	logger := h.logger.With("file", header.Filename, "size", header.Size)

	table, err := dbsources.ExtractReader(file, header.Filename, h.opts)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("extraction failed", "error", err)
		} else {
			logger.Info("extraction rejected", "error", err)
		}
		return nil, status, err
	}

	logger.Info("extraction complete", "rows", table.Len(), "sheet", table.SheetName)
	return table, http.StatusOK, nil
}

// userMessage extends dbsources.UserMessage with upload failures.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errMissingUpload):
		return "Error: Please choose an Excel file to upload."
	case errors.Is(err, errUploadTooLarge):
		return fmt.Sprintf("Error: The uploaded file is too large: %v.", err)
	default:
		return dbsources.UserMessage(err)
	}
}

func statusFor(err error) int {
	var inputErr *dbsources.InputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dbsources.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, dbsources.ErrNoDataSources):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func contentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", filename, url.PathEscape(filename))
}

func (h *Handlers) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}
