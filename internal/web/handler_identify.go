package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/vbonduro/plantid/internal/domain"
)

// maxMemory bounds how much of a multipart upload is buffered in memory;
// larger parts spill to temporary files. It is not an upload size limit.
const maxMemory = 32 << 20

// ErrorMessage is the only failure text users ever see.
const ErrorMessage = "An error occurred while identifying the plant. Please try again."

var errNoImage = errors.New("image file required")

// formState drives the submit control. The control is enabled only when a
// file is selected and no request is outstanding.
type formState struct {
	HasFile bool
	Busy    bool
}

func (f formState) SubmitDisabled() bool {
	return !f.HasFile || f.Busy
}

type pageData struct {
	Form         formState
	Plant        *domain.PlantInfo
	Preview      template.URL
	Error        string
	ErrorMessage string
}

var identifyPage = []string{"base.html", "pages/identify.html", "partials/plant_info.html"}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w, http.StatusOK, pageData{ErrorMessage: ErrorMessage}, identifyPage...); err != nil {
		s.requestLog(r).Error("render page failed", "error", err)
	}
}

// handleIdentify serves the HTML form. htmx requests get the result partial;
// plain form posts get the whole page with the preview and result.
func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	log := s.requestLog(r)
	htmx := r.Header.Get("HX-Request") == "true"

	imageData, mediaType, err := readUpload(r, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plant, err := s.service.Identify(r.Context(), imageData, mediaType)
	if err != nil {
		log.Error("identify failed", "mime_type", mediaType, "error", err)
		if htmx {
			http.Error(w, ErrorMessage, http.StatusBadGateway)
			return
		}
		data := pageData{Preview: previewURL(imageData, mediaType), Error: ErrorMessage, ErrorMessage: ErrorMessage}
		if err := s.renderPage(w, http.StatusBadGateway, data, identifyPage...); err != nil {
			log.Error("render page failed", "error", err)
		}
		return
	}

	if htmx {
		if err := s.renderPartial(w, "partials/plant_info.html", plant); err != nil {
			log.Error("render partial failed", "error", err)
		}
		return
	}

	data := pageData{Plant: plant, Preview: previewURL(imageData, mediaType), ErrorMessage: ErrorMessage}
	if err := s.renderPage(w, http.StatusOK, data, identifyPage...); err != nil {
		log.Error("render page failed", "error", err)
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) handleAPIIdentify(w http.ResponseWriter, r *http.Request) {
	log := s.requestLog(r)

	imageData, mediaType, err := readUpload(r, log)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()}, log)
		return
	}

	plant, err := s.service.Identify(r.Context(), imageData, mediaType)
	if err != nil {
		log.Error("identify failed", "mime_type", mediaType, "error", err)
		writeJSON(w, http.StatusBadGateway, apiError{Error: ErrorMessage}, log)
		return
	}

	writeJSON(w, http.StatusOK, plant, log)
}

// readUpload returns the bytes of the "image" form file and its media type.
func readUpload(r *http.Request, log *slog.Logger) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, "", errors.New("failed to parse form")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", errNoImage
	}
	defer closeWithLog(file, "upload file", log)

	imageData, err := io.ReadAll(file)
	if err != nil {
		log.Error("read upload failed", "error", err)
		return nil, "", errors.New("failed to read file")
	}

	return imageData, resolveMediaType(header.Header.Get("Content-Type"), imageData), nil
}

// resolveMediaType prefers the media type the browser declared for the part
// and falls back to sniffing when none was given. No format is rejected.
func resolveMediaType(declared string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return mt
	}
	if isWebP(data) {
		return "image/webp"
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8). The stdlib sniffer has no WebP signature.
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// previewURL renders image bytes as a data URI. Non-image types get no preview.
func previewURL(data []byte, mediaType string) template.URL {
	if !strings.HasPrefix(mediaType, "image/") || len(data) == 0 {
		return ""
	}
	return template.URL("data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func writeJSON(w http.ResponseWriter, status int, v any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("write json failed", "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
