// Package testserver is an in-process fake of the REST API for tests. It
// serves canned envelopes per path, cursor-paged work lists, the plain-text
// not-found reply for unknown identifiers and a route-not-found envelope for
// unknown paths.
package testserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
)

// NotFoundBody is the reply for an identifier the API does not know.
const NotFoundBody = "Resource not found."

// cursorPrefix prefixes the next-cursor tokens handed out by paged routes.
const cursorPrefix = "page-"

var components = []string{"works", "funders", "members", "prefixes", "types", "journals"}

// Request is one request received by the server.
type Request struct {
	Path      string
	RawQuery  string
	Query     url.Values
	RequestID string
	UserAgent string
}

type reply struct {
	status int
	body   string
}

// Server is a fake API bound to a local listener.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]reply
	pages    map[string][]string
	requests []Request
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		replies: make(map[string]reply),
		pages:   make(map[string][]string),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/{component}", s.handle)
	r.Get("/{component}/*", s.handle)
	r.NotFound(routeNotFound)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

// Reply serves body with status for GET requests on path, whatever the query.
func (s *Server) Reply(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replies[path] = reply{status: status, body: body}
}

// ReplyJSON serves an ok envelope of messageType carrying message on path.
func (s *Server) ReplyJSON(path, messageType string, message interface{}) {
	s.Reply(path, http.StatusOK, Envelope(messageType, message))
}

// Pages serves a cursor-paged work list on path. Each page holds the given
// DOIs; every page but the last points to its successor through next-cursor,
// and the last is followed by an empty page. A request without a cursor gets
// the first page and no next-cursor.
func (s *Server) Pages(path string, pages ...[]string) {
	bodies := make([]string, 0, len(pages)+1)
	total := 0

	for _, dois := range pages {
		total += len(dois)
	}

	for i, dois := range pages {
		bodies = append(bodies, WorkListPage(total, cursorPrefix+strconv.Itoa(i+1), dois...))
	}

	bodies = append(bodies, WorkListPage(total, cursorPrefix+strconv.Itoa(len(pages)+1)))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[path] = bodies
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Path:      r.URL.Path,
			RawQuery:  r.URL.RawQuery,
			Query:     r.URL.Query(),
			RequestID: r.Header.Get(constants.RequestIDHeader),
			UserAgent: r.UserAgent(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	component := chi.URLParam(r, "component")
	if !slices.Contains(components, component) {
		routeNotFound(w, r)

		return
	}

	s.mu.Lock()
	pages, paged := s.pages[r.URL.Path]
	rep, ok := s.replies[r.URL.Path]
	s.mu.Unlock()

	switch {
	case paged:
		writePage(w, r, pages)
	case ok:
		write(w, rep.status, rep.body)
	case strings.HasSuffix(r.URL.Path, "/works"):
		write(w, http.StatusOK, WorkListPage(0, ""))
	case chi.URLParam(r, "*") != "" || component == "prefixes":
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(NotFoundBody))
	default:
		write(w, http.StatusOK, Envelope(component[:len(component)-1]+"-list", map[string]interface{}{
			"total-results": 0,
			"items":         []interface{}{},
		}))
	}
}

func writePage(w http.ResponseWriter, r *http.Request, pages []string) {
	cursor := r.URL.Query().Get("cursor")

	switch {
	case cursor == "":
		var page map[string]interface{}

		_ = json.Unmarshal([]byte(pages[0]), &page)

		if msg, ok := page["message"].(map[string]interface{}); ok {
			delete(msg, "next-cursor")
		}

		body, _ := json.Marshal(page)
		write(w, http.StatusOK, string(body))
	case cursor == "*":
		write(w, http.StatusOK, pages[0])
	default:
		n, err := strconv.Atoi(strings.TrimPrefix(cursor, cursorPrefix))
		if err != nil || n < 1 || n >= len(pages) {
			write(w, http.StatusBadRequest, ValidationFailure("cursor", "cursor", cursor, "Cursor is not valid"))

			return
		}

		write(w, http.StatusOK, pages[n])
	}
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusNotFound, Envelope("route-not-found", nil))
}

func write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Envelope renders an ok envelope. A nil message is omitted.
func Envelope(messageType string, message interface{}) string {
	env := map[string]interface{}{
		"status":          "ok",
		"message-type":    messageType,
		"message-version": "1.0.0",
	}

	if message != nil {
		env["message"] = message
	}

	body, err := json.Marshal(env)
	if err != nil {
		panic(fmt.Sprintf("testserver: encoding envelope: %v", err))
	}

	return string(body)
}

// Work renders the minimal work record with the given DOI.
func Work(doi string) map[string]interface{} {
	return map[string]interface{}{
		"DOI":   doi,
		"type":  "journal-article",
		"URL":   "https://doi.org/" + doi,
		"title": []string{"Title of " + doi},
	}
}

// WorkListPage renders a work-list envelope. An empty nextCursor is omitted.
func WorkListPage(total int, nextCursor string, dois ...string) string {
	items := make([]interface{}, 0, len(dois))
	for _, doi := range dois {
		items = append(items, Work(doi))
	}

	message := map[string]interface{}{
		"total-results":  total,
		"items-per-page": len(dois),
		"items":          items,
	}

	if nextCursor != "" {
		message["next-cursor"] = nextCursor
	}

	return Envelope("work-list", message)
}

// ValidationFailure renders a validation-failure envelope with one failure.
func ValidationFailure(failureType, param, value, message string) string {
	body, err := json.Marshal(map[string]interface{}{
		"status":          "failed",
		"message-type":    "validation-failure",
		"message-version": "1.0.0",
		"message": []map[string]interface{}{{
			"type":    failureType,
			"value":   value,
			"message": message,
			"param":   param,
		}},
	})
	if err != nil {
		panic(fmt.Sprintf("testserver: encoding validation failure: %v", err))
	}

	return string(body)
}
