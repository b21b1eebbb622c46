package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"PokeGallery/internal/config"
	"PokeGallery/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PokemonHandler — записи каталога и загрузка их файлов.
type PokemonHandler struct {
	PokemonService *service.PokemonService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewPokemonHandler(pokemonService *service.PokemonService, logger *zap.SugaredLogger, cfg *config.Config) *PokemonHandler {
	return &PokemonHandler{PokemonService: pokemonService, Logger: logger, Config: cfg}
}

type CreatePokemonRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdatePokemonRequest — все поля опциональны. CategoryID трёхзначен:
// ключ отсутствует — nil (не трогаем), ключ с пустым значением — очистка,
// ключ со значением — установка.
type UpdatePokemonRequest struct {
	Name       *string `json:"name,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

type UpdateFileRequest struct {
	Name   *string `json:"name,omitempty"`
	Folder *string `json:"folder,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// List — GET /api/projects/{projectId}/pokemon?categoryId=
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	pokemon, err := h.PokemonService.FindAll(
		r.Context(),
		chi.URLParam(r, "projectId"),
		userID,
		r.URL.Query().Get("categoryId"),
	)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// Create — POST /api/projects/{projectId}/pokemon
func (h *PokemonHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CreatePokemonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	pokemon, err := h.PokemonService.Create(r.Context(), chi.URLParam(r, "projectId"), userID, service.CreatePokemonInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pokemon)
}

// Get — GET /api/pokemon/{id}
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	pokemon, err := h.PokemonService.FindOne(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// Update — PATCH /api/pokemon/{id}
func (h *PokemonHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdatePokemonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	pokemon, err := h.PokemonService.Update(r.Context(), chi.URLParam(r, "id"), userID, service.PokemonPatch{
		Name:       req.Name,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// Delete — DELETE /api/pokemon/{id}: зачистка ассетов fire-and-continue.
func (h *PokemonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.PokemonService.Remove(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// limitBody ограничивает тело запроса лимитом загрузки плюс запас на форму.
func (h *PokemonHandler) limitBody(w http.ResponseWriter, r *http.Request, files int) {
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024*int64(files) + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
}

// fileUpload превращает multipart-заголовок в сервисный FileUpload.
func fileUpload(fh *multipart.FileHeader) (service.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileUpload{}, nil, err
	}
	return service.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, func() { _ = f.Close() }, nil
}

// UploadMainImage — POST /api/pokemon/{id}/main-image, поле "file".
func (h *PokemonHandler) UploadMainImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	h.limitBody(w, r, 1)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadMainImage: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	_, fh, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	if fh.Size > int64(h.Config.UploadMaxSizeMB)*1024*1024 {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	upload, closeFn, err := fileUpload(fh)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	defer closeFn()

	pokemon, err := h.PokemonService.UploadMainImage(r.Context(), chi.URLParam(r, "id"), userID, upload)
	if err != nil {
		h.Logger.Errorw("UploadMainImage: failed", "pokemon_id", chi.URLParam(r, "id"), "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// UploadFiles — POST /api/pokemon/{id}/files, поле "files" (несколько),
// опциональные поля формы "type" и "folder".
func (h *PokemonHandler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	h.limitBody(w, r, h.Config.UploadMaxFiles)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadFiles: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no files provided")
		return
	}
	if len(headers) > h.Config.UploadMaxFiles {
		writeError(w, http.StatusBadRequest, "too many files")
		return
	}

	maxFile := int64(h.Config.UploadMaxSizeMB) * 1024 * 1024
	uploads := make([]service.FileUpload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxFile {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large: "+fh.Filename)
			return
		}
		upload, closeFn, err := fileUpload(fh)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read file: "+fh.Filename)
			return
		}
		defer closeFn()
		uploads = append(uploads, upload)
	}

	pokemon, err := h.PokemonService.UploadFiles(
		r.Context(),
		chi.URLParam(r, "id"),
		userID,
		uploads,
		r.FormValue("type"),
		r.FormValue("folder"),
	)
	if err != nil {
		h.Logger.Errorw("UploadFiles: failed", "pokemon_id", chi.URLParam(r, "id"), "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// UpdateFile — PATCH /api/pokemon/{pokemonId}/files/{fileId}
func (h *PokemonHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	pokemon, err := h.PokemonService.UpdateFile(
		r.Context(),
		chi.URLParam(r, "pokemonId"),
		chi.URLParam(r, "fileId"),
		userID,
		service.FilePatch{Name: req.Name, Folder: req.Folder, Type: req.Type},
	)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}

// DeleteFile — DELETE /api/pokemon/{pokemonId}/files/{fileId}.
// Точечное удаление: сбой внешнего хостинга отдаётся пользователю.
func (h *PokemonHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	pokemon, err := h.PokemonService.DeleteFile(
		r.Context(),
		chi.URLParam(r, "pokemonId"),
		chi.URLParam(r, "fileId"),
		userID,
	)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemon)
}
