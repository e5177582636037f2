// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

var funcMap = template.FuncMap{
	"link": link,
	"css":  func(s string) template.CSS { return template.CSS(s) },
}

// link returns the dashboard URL for state, opening the details panel for
// row when row is non-negative.
func link(state types.SortState, row int) template.URL {
	q := url.Values{}
	if !state.IsZero() {
		q.Set("sort", string(state.Key))
		q.Set("dir", string(state.Direction))
	}
	frag := ""
	if row >= 0 {
		q.Set("row", strconv.Itoa(row))
		frag = "#details"
	}
	if len(q) == 0 {
		return "/"
	}
	return template.URL("/?" + q.Encode() + frag)
}

// sortState reads the sort and dir query parameters. An absent sort is the
// unsorted state.
func sortState(r *http.Request) (types.SortState, error) {
	q := r.URL.Query()
	if q.Get("sort") == "" {
		return types.SortState{}, nil
	}
	key, err := types.ParseSortKey(q.Get("sort"))
	if err != nil {
		return types.SortState{}, err
	}
	dir, err := types.ParseSortDirection(q.Get("dir"))
	if err != nil {
		return types.SortState{}, err
	}
	return types.SortState{Key: key, Direction: dir}, nil
}

// selectedRow reads the row query parameter, or -1.
func selectedRow(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("row"))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := sortState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := dashboard.Build(s.Snapshot(), state, selectedRow(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		s.logger.Error("rendering dashboard", zap.Error(err))
	}
}

func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	if snap == nil {
		writeLoading(w)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.ScatterSeries(snap))
}

func (s *Server) handleRadar(w http.ResponseWriter, r *http.Request) {
	spec, ok := dashboard.RadarByKey(chi.URLParam(r, "series"))
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown radar series %q", chi.URLParam(r, "series")))
		return
	}
	snap := s.Snapshot()
	if snap == nil {
		writeLoading(w)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.RadarSeries(snap, spec))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	state, err := sortState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	snap := s.Snapshot()
	if snap == nil {
		writeLoading(w)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildTable(snap, state))
}

type healthResponse struct {
	Status  string `json:"status"`
	Loaded  bool   `json:"loaded"`
	Records int    `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if snap := s.Snapshot(); snap != nil {
		resp.Loaded = true
		resp.Records = len(snap.Records)
	}
	writeJSON(w, http.StatusOK, resp)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeLoading(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusServiceUnavailable, "loading")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
