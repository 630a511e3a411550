// Package fakeappliance provides an in-memory Morpheus appliance for tests.
//
// The fake serves the generic REST shape every appliance collection shares:
// list with name/phrase filters and max/offset paging, get by ID, create,
// update, delete, and collection actions such as POST /api/invoices/refresh.
// Every request is recorded so tests can assert on what the CLI sent.
package fakeappliance

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Request is one recorded request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

type collection struct {
	path      string
	key       string
	listKey   string
	nameField string
	items     map[int64]map[string]any
	nextID    int64
}

// Server is a fake appliance backed by httptest.
type Server struct {
	// Token, when set, must be sent as a bearer token.
	Token string

	mu          sync.Mutex
	collections []*collection
	requests    []Request
	whoami      map[string]any
	failures    []failure
	srv         *httptest.Server
}

type failure struct {
	status int
	body   map[string]any
}

// New creates a fake appliance. Register collections, then call Start.
func New() *Server {
	return &Server{
		whoami: map[string]any{
			"user":      map[string]any{"id": 1, "username": "admin", "firstName": "Admin", "email": "admin@example.com"},
			"appliance": map[string]any{"buildVersion": "8.0.0"},
		},
	}
}

// AddCollection registers a REST collection. nameField is the record field
// and query parameter used for name lookups.
func (s *Server) AddCollection(path, key, listKey, nameField string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = append(s.collections, &collection{
		path: path, key: key, listKey: listKey, nameField: nameField,
		items: map[int64]map[string]any{}, nextID: 1,
	})
	// Longest path first so /api/networks/groups wins over /api/networks
	sort.Slice(s.collections, func(i, j int) bool {
		return len(s.collections[i].path) > len(s.collections[j].path)
	})
}

// Seed stores items in a collection and returns their assigned IDs. Items
// that already carry an id keep it.
func (s *Server) Seed(path string, items ...map[string]any) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collection(path)
	if c == nil {
		panic(fmt.Sprintf("fakeappliance: unknown collection %s", path))
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, c.insert(item))
	}
	return ids
}

// SetWhoami replaces the /api/whoami response.
func (s *Server) SetWhoami(resp map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.whoami = resp
}

// FailNext makes the next request fail with status and body.
func (s *Server) FailNext(status int, body map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, body: body})
}

// Start serves the fake and returns its URL.
func (s *Server) Start() string {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.record(), s.auth())
	router.GET("/api/whoami", s.handleWhoami)
	router.NoRoute(s.dispatch)

	s.srv = httptest.NewServer(router)
	return s.srv.URL
}

// Close stops the server.
func (s *Server) Close() {
	if s.srv != nil {
		s.srv.Close()
	}
}

// Requests returns the recorded requests in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Writes returns recorded requests other than GET.
func (s *Server) Writes() []Request {
	var writes []Request
	for _, r := range s.Requests() {
		if r.Method != http.MethodGet {
			writes = append(writes, r)
		}
	}
	return writes
}

// Item returns a stored item, or nil.
func (s *Server) Item(path string, id int64) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.collection(path); c != nil {
		return c.items[id]
	}
	return nil
}

func (s *Server) collection(path string) *collection {
	for _, c := range s.collections {
		if c.path == path {
			return c
		}
	}
	return nil
}

func (c *collection) insert(item map[string]any) int64 {
	id := toInt64(item["id"])
	if id == 0 {
		id = c.nextID
	}
	if id >= c.nextID {
		c.nextID = id + 1
	}
	stored := make(map[string]any, len(item)+1)
	for k, v := range item {
		stored[k] = v
	}
	stored["id"] = id
	c.items[id] = stored
	return id
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := Request{Method: c.Request.Method, Path: c.Request.URL.Path, Query: c.Request.URL.Query()}
		if c.Request.Body != nil {
			data, _ := io.ReadAll(c.Request.Body)
			if len(data) > 0 {
				_ = json.Unmarshal(data, &req.Body)
			}
			c.Set("body", req.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		var fail *failure
		if len(s.failures) > 0 {
			fail = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()

		if fail != nil {
			c.AbortWithStatusJSON(fail.status, fail.body)
			return
		}
		c.Next()
	}
}

func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Token != "" && c.GetHeader("Authorization") != "Bearer "+s.Token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "error_description": "Invalid access token"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleWhoami(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.whoami)
}

// dispatch routes a request to the collection owning its path.
func (s *Server) dispatch(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimRight(c.Request.URL.Path, "/")
	for _, col := range s.collections {
		if path == col.path {
			switch c.Request.Method {
			case http.MethodGet:
				s.list(c, col)
			case http.MethodPost:
				s.create(c, col)
			default:
				c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "msg": "method not allowed"})
			}
			return
		}

		rest, ok := strings.CutPrefix(path, col.path+"/")
		if !ok || strings.Contains(rest, "/") {
			continue
		}
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			// Collection action, e.g. POST /api/invoices/refresh
			c.JSON(http.StatusOK, gin.H{"success": true, "msg": rest + " requested"})
			return
		}
		switch c.Request.Method {
		case http.MethodGet:
			s.get(c, col, id)
		case http.MethodPut:
			s.update(c, col, id)
		case http.MethodDelete:
			s.destroy(c, col, id)
		default:
			c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "msg": "method not allowed"})
		}
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"success": false, "msg": "Unable to find resource " + path})
}
