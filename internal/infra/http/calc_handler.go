package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/balkonpro/estimator/internal/domain/estimate"
	"github.com/balkonpro/estimator/internal/export"
	"github.com/balkonpro/estimator/internal/infra/metrics"
)

// CalcRequest запрос на расчёт: имя вкладки и данные её формы.
// Учётные данные вызывающего пробрасываются транспортом прозрачно и
// здесь не интерпретируются.
type CalcRequest struct {
	TabName string          `json:"tabName"`
	Data    json.RawMessage `json:"data"`
}

type CalcHandler struct {
	engine *estimate.Engine
	log    *slog.Logger
	mx     *metrics.Metrics
}

func NewCalcHandler(engine *estimate.Engine, log *slog.Logger, mx *metrics.Metrics) *CalcHandler {
	return &CalcHandler{engine: engine, log: log, mx: mx}
}

func (h *CalcHandler) compute(w http.ResponseWriter, r *http.Request) (estimate.Result, string, bool) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON")
		return estimate.Result{}, "", false
	}
	if req.TabName == "" {
		writeError(w, http.StatusBadRequest, "не указана вкладка")
		return estimate.Result{}, "", false
	}
	if len(req.Data) == 0 {
		req.Data = json.RawMessage("{}")
	}

	start := time.Now()
	res := h.engine.Compute(r.Context(), req.TabName, req.Data)
	h.mx.Duration.Observe(time.Since(start).Seconds())

	status := "ok"
	if !res.Success {
		status = "error"
	}
	h.mx.Calculations.WithLabelValues(req.TabName, status).Inc()
	return res, req.TabName, true
}

func (h *CalcHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	res, tab, ok := h.compute(w, r)
	if !ok {
		return
	}
	if !res.Success {
		h.log.Warn("calculation failed", "tab", tab, "error", res.Error)
		writeJSON(w, http.StatusBadRequest, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Export считает ту же смету и отдаёт её Excel-файлом.
func (h *CalcHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, tab, ok := h.compute(w, r)
	if !ok {
		return
	}
	if !res.Success {
		writeJSON(w, http.StatusBadRequest, res)
		return
	}

	buf, err := export.Workbook(tab, res)
	if err != nil {
		h.log.Error("export failed", "tab", tab, "err", err)
		writeError(w, http.StatusInternalServerError, "не удалось сформировать файл")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "смета.xlsx"))
	_, _ = w.Write(buf.Bytes())
}
