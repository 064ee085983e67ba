// Package backendtest runs an in-process stand-in for the remote student
// support API, close enough to the real service for client and flow
// tests: bearer JWTs, bcrypt-checked accounts, and the owner-or-admin
// mutation rule on both community collections.
package backendtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/student-support/supportctl/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// DefaultChatReply is returned by the wellness endpoint unless the test
// overrides Server.ChatReply.
const DefaultChatReply = "Thank you for sharing. How does that make you feel?"

type account struct {
	user domain.User
	hash []byte
}

// wireItem is a community record as the real backend serialises it. There
// is no type discriminator on the wire; the collection is the
// discriminator.
type wireItem struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	CreatedAt   string `json:"createdAt"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Content     string `json:"content,omitempty"`
}

// Server is the fake API. URL is ready to use as a client base URL.
type Server struct {
	URL string
	// ChatReply overrides the canned wellness answer.
	ChatReply string

	secret []byte

	mu      sync.Mutex
	byEmail map[string]*account
	byID    map[string]*account
	events  []*wireItem
	posts   []*wireItem

	ts *httptest.Server
}

// New starts the fake API and registers its shutdown with t.Cleanup.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		secret:  []byte("backendtest-secret"),
		byEmail: map[string]*account{},
		byID:    map[string]*account{},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.POST("/auth/login", s.login)
	e.POST("/auth/register", s.register)

	community := e.Group("/community", s.requireAuth)
	community.GET("/events", s.list(&s.events))
	community.POST("/events", s.create(&s.events, true))
	community.PUT("/events/:id", s.update(&s.events))
	community.DELETE("/events/:id", s.remove(&s.events))
	community.GET("/posts", s.list(&s.posts))
	community.POST("/posts", s.create(&s.posts, false))
	community.PUT("/posts/:id", s.update(&s.posts))
	community.DELETE("/posts/:id", s.remove(&s.posts))

	e.POST("/mental-health/chat", s.chat)

	s.ts = httptest.NewServer(e)
	s.URL = s.ts.URL
	t.Cleanup(s.ts.Close)
	return s
}

// SeedUser registers an account directly, bypassing the HTTP surface, and
// returns its profile.
func (s *Server) SeedUser(t *testing.T, name, email, password, role string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash seed password: %v", err)
	}
	user := domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := &account{user: user, hash: hash}
	s.byEmail[email] = acct
	s.byID[user.ID] = acct
	return user
}

// SeedEvent inserts an event owned by the given user and returns its id.
func (s *Server) SeedEvent(owner domain.User, title, description, date string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := &wireItem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		UserID:      owner.ID,
		UserName:    owner.Name,
	}
	s.events = append(s.events, it)
	return it.ID
}

// SeedPost inserts a post owned by the given user and returns its id.
func (s *Server) SeedPost(owner domain.User, title, content string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := &wireItem{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:    owner.ID,
		UserName:  owner.Name,
	}
	s.posts = append(s.posts, it)
	return it.ID
}

// ── Auth ──────────────────────────────────────────────────────────────────────

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StudentID string `json:"studentId"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *Server) login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	acct, ok := s.byEmail[req.Email]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.mintToken(acct.user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: acct.user})
}

func (s *Server) register(c echo.Context) error {
	var req registration
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.StudentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	s.mu.Lock()
	if _, exists := s.byEmail[req.Email]; exists {
		s.mu.Unlock()
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      domain.RoleStudent,
		StudentID: req.StudentID,
	}
	acct := &account{user: user, hash: hash}
	s.byEmail[req.Email] = acct
	s.byID[user.ID] = acct
	s.mu.Unlock()

	token, err := s.mintToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) mintToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// requireAuth validates the bearer JWT and stashes the account's profile
// in the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["sub"].(string)
		s.mu.Lock()
		acct, ok := s.byID[sub]
		s.mu.Unlock()
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
		}

		c.Set("user", acct.user)
		return next(c)
	}
}

// ── Community collections ─────────────────────────────────────────────────────

func (s *Server) list(coll *[]*wireItem) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		out := make([]wireItem, 0, len(*coll))
		for _, it := range *coll {
			out = append(out, *it)
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (s *Server) create(coll *[]*wireItem, isEvent bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req wireItem
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if req.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		if isEvent && req.Date == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "date is required")
		}

		user := c.Get("user").(domain.User)
		it := &wireItem{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Content:     req.Content,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
			UserID:      user.ID,
			UserName:    user.Name,
		}

		s.mu.Lock()
		*coll = append(*coll, it)
		s.mu.Unlock()
		return c.JSON(http.StatusCreated, it)
	}
}

func (s *Server) update(coll *[]*wireItem) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req wireItem
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		user := c.Get("user").(domain.User)

		s.mu.Lock()
		defer s.mu.Unlock()

		it := findWire(*coll, c.Param("id"))
		if it == nil {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		if it.UserID != user.ID && user.Role != domain.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "you can only modify your own items")
		}

		if req.Title != "" {
			it.Title = req.Title
		}
		if req.Description != "" {
			it.Description = req.Description
		}
		if req.Date != "" {
			it.Date = req.Date
		}
		if req.Content != "" {
			it.Content = req.Content
		}
		return c.JSON(http.StatusOK, it)
	}
}

func (s *Server) remove(coll *[]*wireItem) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := c.Get("user").(domain.User)

		s.mu.Lock()
		defer s.mu.Unlock()

		for i, it := range *coll {
			if it.ID != c.Param("id") {
				continue
			}
			if it.UserID != user.ID && user.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "you can only modify your own items")
			}
			*coll = append((*coll)[:i], (*coll)[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
		}
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}
}

// ── Wellness chat ─────────────────────────────────────────────────────────────

func (s *Server) chat(c echo.Context) error {
	var req struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	reply := s.ChatReply
	if reply == "" {
		reply = DefaultChatReply
	}
	return c.JSON(http.StatusOK, map[string]string{"response": reply})
}

func findWire(coll []*wireItem, id string) *wireItem {
	for _, it := range coll {
		if it.ID == id {
			return it
		}
	}
	return nil
}
