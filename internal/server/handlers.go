package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/calculations"
	"github.com/cloud-ru/loancalc-go/internal/calculator"
	"github.com/cloud-ru/loancalc-go/internal/service"
	"github.com/cloud-ru/loancalc-go/internal/validators"
)

const maxBodyBytes = 1 << 16

type calculateResponse struct {
	MonthlyPayment string `json:"monthly_payment"`
	Display        string `json:"display"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON кодирует ответ до записи статуса, чтобы ошибка кодирования не оставляла пустой 200
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zap.L().Error("encode response failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zap.L().Warn("write response failed", zap.Error(err))
	}
}

func decodeInputs(w http.ResponseWriter, r *http.Request) (calculations.CalculatorInputs, bool) {
	var in calculations.CalculatorInputs
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return in, false
	}
	return in, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInputs(w, r)
	if !ok {
		return
	}

	result := s.svc.Calculate(r.Context(), service.SourceAPI, in)
	if !result.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: result.Failure.Message})
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		MonthlyPayment: result.Success.MonthlyPayment.StringFixed(2),
		Display:        result.Display(),
	})
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInputs(w, r)
	if !ok {
		return
	}

	result, err := s.svc.Schedule(r.Context(), service.SourceAPI, in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case errors.Is(err, validators.ErrInvalidLoanInput):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: calculations.InvalidInputMessage})
	case errors.Is(err, calculations.ErrFractionalTerm),
		errors.Is(err, calculations.ErrScheduleTooShort),
		errors.Is(err, calculations.ErrScheduleTooLong),
		errors.Is(err, calculations.ErrScheduleOverflow):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		zap.L().Error("schedule failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, calculator.New())
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	widget := calculator.New()
	widget.SetAmount(r.PostForm.Get("amount"))
	widget.SetRate(r.PostForm.Get("rate"))
	widget.SetTerm(r.PostForm.Get("term"))
	widget.Apply(s.svc.Calculate(r.Context(), service.SourceForm, widget.Inputs()))

	s.renderPage(w, widget)
}

func (s *Server) renderPage(w http.ResponseWriter, widget *calculator.Widget) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := calculatorPage.Execute(w, widget.View()); err != nil {
		zap.L().Error("render calculator page failed", zap.Error(err))
	}
}
