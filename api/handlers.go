package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/seenimoa/yfapi/internal/provider"
	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/utils"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "yfapi is working!"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"version":  Version,
		"provider": s.provider.Name(),
	})
}

// symbolParam returns the normalised {symbol} path parameter.
func symbolParam(r *http.Request) string {
	return utils.NormalizeSymbol(chi.URLParam(r, "symbol"))
}

// providerError logs a failed provider call and answers 400 with the error
// text as detail.
func (s *Server) providerError(w http.ResponseWriter, endpoint, symbol string, err error) {
	s.log.Warn().Err(err).Str("endpoint", endpoint).Str("symbol", symbol).Msg("provider call failed")
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeRecords normalises t and writes the record list.
func writeRecords(w http.ResponseWriter, t table.Tabular) {
	writeJSON(w, http.StatusOK, table.Normalize(t))
}

// frameHandler serves a provider call that returns a Frame.
func (s *Server) frameHandler(endpoint string, fetch func(context.Context, string) (*table.Frame, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := symbolParam(r)
		frame, err := fetch(r.Context(), symbol)
		if err != nil {
			s.providerError(w, endpoint, symbol, err)
			return
		}
		writeRecords(w, frame)
	}
}

// seriesHandler serves a provider call that returns a Series.
func (s *Server) seriesHandler(endpoint string, fetch func(context.Context, string) (*table.Series, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := symbolParam(r)
		series, err := fetch(r.Context(), symbol)
		if err != nil {
			s.providerError(w, endpoint, symbol, err)
			return
		}
		writeRecords(w, series)
	}
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	info, err := s.provider.Info(r.Context(), symbol)
	if err != nil {
		s.providerError(w, "info", symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"info": table.CleanValue(info)})
}

func (s *Server) handleFastInfo(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	fi, err := s.provider.FastInfo(r.Context(), symbol)
	if err != nil {
		s.providerError(w, "fast-info", symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, fi)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	q := r.URL.Query()

	params, err := provider.NewHistoryParams(q.Get("period"), q.Get("interval"), q.Get("start"), q.Get("end"))
	if err != nil {
		s.providerError(w, "history", symbol, err)
		return
	}

	frame, err := s.provider.History(r.Context(), symbol, params)
	if err != nil {
		s.providerError(w, "history", symbol, err)
		return
	}
	writeRecords(w, frame)
}

func (s *Server) handleAnalystTargets(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	targets, err := s.provider.AnalystPriceTargets(r.Context(), symbol)
	if err != nil {
		s.providerError(w, "analyst-targets", symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, targets)
}

func (s *Server) handleEarningsDates(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)

	limit := provider.DefaultEarningsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusUnprocessableEntity, "limit: must be a positive integer, got "+strconv.Quote(raw))
			return
		}
		limit = n
	}

	frame, err := s.provider.EarningsDates(r.Context(), symbol, limit)
	if err != nil {
		s.providerError(w, "earnings-dates", symbol, err)
		return
	}
	writeRecords(w, frame.Head(limit))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	cal, err := s.provider.Calendar(r.Context(), symbol)
	if err != nil {
		s.providerError(w, "calendar", symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, table.CleanValue(cal))
}
