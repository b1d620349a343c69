package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/balkonpro/estimator/internal/domain/catalog"
	"github.com/balkonpro/estimator/internal/domain/materials"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type MaterialsHandler struct {
	svc *catalog.Service
	log *slog.Logger
}

func NewMaterialsHandler(svc *catalog.Service, log *slog.Logger) *MaterialsHandler {
	return &MaterialsHandler{svc: svc, log: log}
}

// PaginatedResponse стандартный конверт постраничного списка.
type PaginatedResponse struct {
	Data        any `json:"data"`
	TotalRows   int `json:"totalRows"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

func (h *MaterialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m materials.Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON")
		return
	}
	out, err := h.svc.CreateMaterial(r.Context(), &m)
	if err != nil {
		h.log.Warn("material create rejected", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *MaterialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Material(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, materials.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error("material get failed", "err", err)
		writeError(w, http.StatusInternalServerError, "ошибка каталога")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MaterialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var m materials.Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON")
		return
	}
	m.ID = r.PathValue("id")
	out, err := h.svc.UpdateMaterial(r.Context(), &m)
	if err != nil {
		if errors.Is(err, materials.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Warn("material update rejected", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MaterialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMaterial(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, materials.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error("material delete failed", "err", err)
		writeError(w, http.StatusInternalServerError, "ошибка каталога")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// List постраничный список материалов категории:
// GET /api/materials?category=Пол:Скрытые&page=1&pageSize=20
func (h *MaterialsHandler) List(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("category")
	if err := materials.ValidateCategoryTag(tag); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	switch {
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	case pageSize <= 0:
		pageSize = defaultPageSize
	}

	items, total, err := h.svc.ListByCategory(r.Context(), tag, page, pageSize)
	if err != nil {
		h.log.Error("material list failed", "category", tag, "err", err)
		writeError(w, http.StatusInternalServerError, "ошибка каталога")
		return
	}
	if items == nil {
		items = []materials.Material{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	writeJSON(w, http.StatusOK, PaginatedResponse{
		Data:        items,
		TotalRows:   total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	})
}
