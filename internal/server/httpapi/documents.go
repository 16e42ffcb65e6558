package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// uploadMemoryBytes is how much of a multipart upload is buffered in memory;
// the rest spills to temporary files.
const uploadMemoryBytes = 8 << 20

const uploadField = "files"

type documentResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	Title       string    `json:"title"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	OwnerID     string    `json:"ownerId"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
}

type uploadResponse struct {
	Count   int      `json:"count"`
	Size    int64    `json:"size"`
	FilesID []string `json:"filesId"`
}

type renameRequest struct {
	Title   string `json:"title"`
	Version int64  `json:"version"`
}

func toDocumentResponse(d *models.Document) documentResponse {
	return documentResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		Title:       d.Title,
		ContentType: d.ContentType,
		Size:        d.Size,
		OwnerID:     d.OwnerID,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
	}
}

func toDocumentList(docs []*models.Document) []documentResponse {
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}

// caller returns the authenticated user name; authMiddleware guarantees it.
func caller(r *http.Request) string {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		return ""
	}
	return p.Name
}

func (s *Server) writeDocumentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrForbidden):
		writeError(w, http.StatusForbidden, "It isn't your file")
	case errors.Is(err, common.ErrVersionConflict):
		writeError(w, http.StatusConflict, "Document was modified, reload and retry")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Document not found")
	default:
		s.writeServiceError(w, r, err)
	}
}

func (s *Server) handleUploadDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadMemoryBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("No files in field %q", uploadField))
		return
	}

	uploads := make([]services.Upload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unreadable file part")
			return
		}
		defer f.Close()

		uploads = append(uploads, services.Upload{
			FileName:    h.Filename,
			ContentType: partContentType(h),
			Size:        h.Size,
			Body:        f,
		})
	}

	res, err := s.documents.Upload(r.Context(), caller(r), uploads)
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Count: res.Count, Size: res.Size, FilesID: res.IDs})
}

func partContentType(h *multipart.FileHeader) string {
	if ct := h.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context(), caller(r))
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentList(docs))
}

func (s *Server) handleListAllDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListAll(r.Context())
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentList(docs))
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.Get(r.Context(), caller(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	doc, body, err := s.documents.Open(r.Context(), caller(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(doc.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		s.logger.Warn(r.Context(), "document download interrupted", "id", doc.ID, "error", err)
	}
}

func (s *Server) handleRenameDocument(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	doc, err := s.documents.Rename(r.Context(), caller(r), chi.URLParam(r, "id"), req.Title, req.Version)
	if err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.Delete(r.Context(), caller(r), chi.URLParam(r, "id")); err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeSuccess(w, "Document deleted")
}

func (s *Server) handleAdminDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.AdminDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDocumentError(w, r, err)
		return
	}
	writeSuccess(w, "Document deleted")
}
