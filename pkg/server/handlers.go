package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/matzehuels/isobench/pkg/buildinfo"
	"github.com/matzehuels/isobench/pkg/cache"
	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/generate"
	"github.com/matzehuels/isobench/pkg/graph"
	"github.com/matzehuels/isobench/pkg/iso"
	"github.com/matzehuels/isobench/pkg/observability"
	"github.com/matzehuels/isobench/pkg/tree"
)

const keyTypeForm = "form"

// CheckRequest is the body of POST /v1/check.
type CheckRequest struct {
	A            string `json:"a"`
	B            string `json:"b"`
	TreeFastPath *bool  `json:"tree_fast_path,omitempty"`
}

// CheckResponse is the verdict for a CheckRequest.
type CheckResponse struct {
	Isomorphic bool       `json:"isomorphic"`
	Method     iso.Method `json:"method"`
	AIsTree    bool       `json:"a_is_tree"`
	BIsTree    bool       `json:"b_is_tree"`
}

// GraphRequest is the body of POST /v1/encode and POST /v1/form.
type GraphRequest struct {
	Graph string `json:"graph"`
}

// EncodeResponse holds the centers of a tree and the encoding rooted at each.
type EncodeResponse struct {
	IsTree    bool     `json:"is_tree"`
	Centers   []int    `json:"centers"`
	Encodings []string `json:"encodings"`
}

// FormResponse holds an isomorphism-invariant form of a graph.
type FormResponse struct {
	Form   string `json:"form"`
	IsTree bool   `json:"is_tree"`
	Cached bool   `json:"cached"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if !s.decode(w, r, &req) {
		return
	}
	a, err := parseGraph("a", req.A)
	if err != nil {
		s.fail(w, err)
		return
	}
	b, err := parseGraph("b", req.B)
	if err != nil {
		s.fail(w, err)
		return
	}

	fast := s.cfg.TreeFastPath
	if req.TreeFastPath != nil {
		fast = *req.TreeFastPath
	}
	v, _ := iso.New(iso.WithTreeFastPath(fast)).CheckTimed(r.Context(), a, b)
	writeJSON(w, http.StatusOK, CheckResponse{
		Isomorphic: v.Isomorphic,
		Method:     v.Method,
		AIsTree:    tree.IsTree(a),
		BIsTree:    tree.IsTree(b),
	})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := parseGraph("graph", req.Graph)
	if err != nil {
		s.fail(w, err)
		return
	}
	t, err := tree.From(g)
	if err != nil {
		s.fail(w, errs.Wrap(errs.ErrCodeNotATree, err, "graph"))
		return
	}

	resp := EncodeResponse{IsTree: true, Centers: t.Centers()}
	for _, c := range resp.Centers {
		enc, err := t.Encode(c)
		if err != nil {
			s.fail(w, errs.Wrap(errs.ErrCodeInternal, err, "encode"))
			return
		}
		resp.Encodings = append(resp.Encodings, enc)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := parseGraph("graph", req.Graph)
	if err != nil {
		s.fail(w, err)
		return
	}
	form, cached := s.form(r.Context(), g)
	writeJSON(w, http.StatusOK, FormResponse{Form: form, IsTree: tree.IsTree(g), Cached: cached})
}

// form returns the canonical form of g, consulting the cache first.
func (s *Server) form(ctx context.Context, g *graph.Graph) (string, bool) {
	key := s.keyer.FormKey(g.Graph6())
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, keyTypeForm)
		return string(data), true
	}
	observability.Cache().OnCacheMiss(ctx, keyTypeForm)

	form := generate.Form(g)
	if err := s.cache.Set(ctx, key, []byte(form), cache.FormTTL); err != nil {
		s.logger.Debug("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeForm, len(form))
	}
	return form, false
}

func parseGraph(field, s string) (*graph.Graph, error) {
	if s == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s is required", field)
	}
	g, err := graph.ParseGraph6(s)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "graph %s", field)
	}
	return g, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, string(errs.ErrCodeInvalidInput),
				fmt.Sprintf("request body exceeds %d bytes", s.cfg.MaxBodyBytes))
			return false
		}
		s.fail(w, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request"))
		return false
	}
	return true
}

// fail writes err with the status derived from its code.
func (s *Server) fail(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	status := errs.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeError(w, status, string(code), errs.UserMessage(err))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
