// Package server exposes the HTTP console over the sync service: login
// and session, collection reads and admin mutations, startup intake,
// view resolution and the AI concierge.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"credema/internal/concierge"
	"credema/internal/datasync"
	"credema/internal/gate"
	"credema/internal/ratelimit"
	"credema/internal/session"
	"credema/internal/util"
	"credema/pkg/domain"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// Config wires required dependencies for the HTTP server. The
// limiters are optional; a nil limiter leaves its routes unthrottled.
type Config struct {
	Data       *datasync.Service
	Sessions   *session.Manager
	Advisor    *concierge.Advisor
	JWTSecret  string
	SessionTTL time.Duration
	LoginLimit *ratelimit.FixedWindowLimiter
	ChatLimit  *ratelimit.FixedWindowLimiter
}

// Server exposes the console API.
type Server struct {
	data       *datasync.Service
	sessions   *session.Manager
	advisor    *concierge.Advisor
	tokens     *tokens
	mux        *http.ServeMux
	log        *slog.Logger
	loginLimit *ratelimit.FixedWindowLimiter
	chatLimit  *ratelimit.FixedWindowLimiter
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		data:       cfg.Data,
		sessions:   cfg.Sessions,
		advisor:    cfg.Advisor,
		tokens:     newTokens(cfg.JWTSecret, cfg.SessionTTL),
		mux:        http.NewServeMux(),
		log:        slog.Default(),
		loginLimit: cfg.LoginLimit,
		chatLimit:  cfg.ChatLimit,
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestLog(util.WithCORS(s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// session
	s.mux.HandleFunc("/api/login", s.handleLogin)
	s.mux.Handle("/api/logout", s.authenticated(s.handleLogout))
	s.mux.Handle("/api/me", s.authenticated(s.handleMe))

	// collections; accounts mixes open and admin methods, so it gates
	// per method inside the handler
	s.mux.HandleFunc("/api/accounts", s.handleAccounts)
	s.mux.Handle("/api/accounts/", s.adminOnly(s.handleAccountByID))
	s.mux.HandleFunc("/api/deals", s.handleDeals)
	s.mux.Handle("/api/deals/", s.adminOnly(s.handleDealByID))
	s.mux.HandleFunc("/api/posts", s.handlePosts)
	s.mux.Handle("/api/posts/", s.adminOnly(s.handlePostByID))

	// intake, navigation, concierge
	s.mux.HandleFunc("/api/register-startup", s.handleRegisterStartup)
	s.mux.HandleFunc("/api/navigate", s.handleNavigate)
	s.mux.HandleFunc("/api/chat", s.handleChat)
	s.mux.HandleFunc("/api/deal-chat", s.handleDealChat)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type authHandler func(http.ResponseWriter, *http.Request, domain.Account)

func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := s.authorize(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, account)
	})
}

func (s *Server) adminOnly(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := s.authorize(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !gate.Admits(domain.ViewAdmin, account) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next(w, r, account)
	})
}

// authorize resolves the bearer token to a current account record. The
// token carries only the id; the role and status come from the
// freshest known copy so admin edits apply on the next request.
func (s *Server) authorize(r *http.Request) (domain.Account, bool) {
	token, ok := bearerToken(r)
	if !ok {
		return domain.Account{}, false
	}
	id, err := s.tokens.subject(token)
	if err != nil {
		s.log.Warn("token rejected", "err", err)
		return domain.Account{}, false
	}
	for _, account := range s.data.FetchAccounts(r.Context()) {
		if account.ID == id {
			account.IsLoggedIn = true
			return account, true
		}
	}
	return domain.Account{}, false
}

// identity is authorize with an anonymous fallback, for routes open to
// visitors that still personalize when a token is present.
func (s *Server) identity(r *http.Request) domain.Account {
	if account, ok := s.authorize(r); ok {
		return account
	}
	return domain.Anonymous()
}

// session handlers

type loginRequest struct {
	Identifier string `json:"identifier"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Account domain.Account `json:"account"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.allowRate(w, r, s.loginLimit, "too many login attempts") {
		return
	}
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	account, ok := s.sessions.Login(r.Context(), req.Identifier)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown account")
		return
	}
	if !loginEligible(account) {
		s.sessions.Logout(r.Context())
		writeError(w, http.StatusForbidden, "account not approved")
		return
	}
	token, err := s.tokens.issue(account.ID)
	if err != nil {
		s.log.Error("token issue failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Account: account})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ domain.Account) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	s.sessions.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, account domain.Account) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// loginEligible mirrors the approval gate: only approved accounts get a
// session, admins regardless of status.
func loginEligible(account domain.Account) bool {
	return account.Role == domain.RoleAdmin || account.Status == domain.StatusApproved
}

// account handlers

type accountSignup struct {
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	EntityName string      `json:"entityName"`
	Role       domain.Role `json:"role"`
}

// signupRoles is the closed set a visitor may claim for themselves.
// Anything else, ADMIN above all, falls back to FOUNDER.
var signupRoles = map[domain.Role]struct{}{
	domain.RoleFounder:          {},
	domain.RoleSeedInvestor:     {},
	domain.RoleLeverageProvider: {},
}

func signupRole(requested domain.Role) domain.Role {
	if _, ok := signupRoles[requested]; ok {
		return requested
	}
	return domain.RoleFounder
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !s.requireAdmin(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, s.data.FetchAccounts(r.Context()))
	case http.MethodPost:
		// open: visitor signup lands as a pending account awaiting
		// admin approval
		var req accountSignup
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "email and name are required")
			return
		}
		account := domain.Account{
			ID:         "user-" + uuid.NewString(),
			Email:      strings.TrimSpace(req.Email),
			Name:       strings.TrimSpace(req.Name),
			EntityName: strings.TrimSpace(req.EntityName),
			Role:       signupRole(req.Role),
			Status:     domain.StatusPending,
		}
		s.data.CreateAccount(r.Context(), account)
		writeJSON(w, http.StatusCreated, account)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var account domain.Account
		if err := decodeBody(r, &account); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if account.ID == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		writeJSON(w, http.StatusOK, s.data.UpdateAccount(r.Context(), account))
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAccountByID(w http.ResponseWriter, r *http.Request, _ domain.Account) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id := pathID(r, "/api/accounts/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	writeJSON(w, http.StatusOK, s.data.DeleteAccount(r.Context(), id))
}

// deal handlers

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.data.FetchDeals(r.Context()))
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var deal domain.Deal
		if err := decodeBody(r, &deal); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if deal.ID == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		writeJSON(w, http.StatusOK, s.data.UpdateDeal(r.Context(), deal))
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleDealByID(w http.ResponseWriter, r *http.Request, _ domain.Account) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id := pathID(r, "/api/deals/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	writeJSON(w, http.StatusOK, s.data.DeleteDeal(r.Context(), id))
}

// post handlers

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.data.FetchPosts(r.Context()))
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var post domain.BlogPost
		if err := decodeBody(r, &post); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if post.ID == "" {
			post.ID = "post-" + uuid.NewString()
		}
		writeJSON(w, http.StatusCreated, s.data.CreatePost(r.Context(), post))
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var post domain.BlogPost
		if err := decodeBody(r, &post); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if post.ID == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		writeJSON(w, http.StatusOK, s.data.UpdatePost(r.Context(), post))
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handlePostByID(w http.ResponseWriter, r *http.Request, _ domain.Account) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id := pathID(r, "/api/posts/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	writeJSON(w, http.StatusOK, s.data.DeletePost(r.Context(), id))
}

// intake

type registrationResponse struct {
	Account     domain.Account `json:"account"`
	Deal        domain.Deal    `json:"deal"`
	BookingLink string         `json:"bookingLink"`
}

func (s *Server) handleRegisterStartup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var reg datasync.StartupRegistration
	if err := decodeBody(r, &reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(reg.CompanyName) == "" {
		writeError(w, http.StatusBadRequest, "companyName is required")
		return
	}
	account, deal := s.data.RegisterStartup(r.Context(), reg)
	writeJSON(w, http.StatusCreated, registrationResponse{
		Account:     account,
		Deal:        deal,
		BookingLink: concierge.BookingLink(deal.CompanyName),
	})
}

// navigation

type navigateRequest struct {
	View domain.View `json:"view"`
}

type navigateResponse struct {
	Requested domain.View `json:"requested"`
	Resolved  domain.View `json:"resolved"`
}

// handleNavigate resolves a view request against the caller's role.
// Anonymous callers are welcome; they just resolve like any visitor.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req navigateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	account := s.identity(r)
	writeJSON(w, http.StatusOK, navigateResponse{
		Requested: req.View,
		Resolved:  gate.Allow(req.View, account),
	})
}

// concierge

type chatRequest struct {
	Language domain.Language `json:"language"`
	Question string          `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.advisor == nil {
		writeError(w, http.StatusServiceUnavailable, "concierge unavailable")
		return
	}
	if !s.allowRate(w, r, s.chatLimit, "too many questions, slow down") {
		return
	}
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	posts := s.data.FetchPosts(r.Context())
	answer, err := s.advisor.Ask(r.Context(), req.Language, posts, req.Question)
	if err != nil {
		s.log.Error("concierge ask failed", "err", err)
		writeError(w, http.StatusBadGateway, "concierge unavailable")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

type dealChatRequest struct {
	Language domain.Language `json:"language"`
	DealID   string          `json:"dealId"`
	Question string          `json:"question"`
}

// handleDealChat answers a question about one opportunity, with the
// deal's context block folded into the question.
func (s *Server) handleDealChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.advisor == nil {
		writeError(w, http.StatusServiceUnavailable, "concierge unavailable")
		return
	}
	if !s.allowRate(w, r, s.chatLimit, "too many questions, slow down") {
		return
	}
	var req dealChatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	var deal domain.Deal
	found := false
	for _, d := range s.data.FetchDeals(r.Context()) {
		if d.ID == req.DealID {
			deal = d
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "deal not found")
		return
	}
	posts := s.data.FetchPosts(r.Context())
	prompt := concierge.DealBriefing(deal) + "\n\nQUESTION: " + req.Question
	answer, err := s.advisor.Ask(r.Context(), req.Language, posts, prompt)
	if err != nil {
		s.log.Error("concierge ask failed", "err", err)
		writeError(w, http.StatusBadGateway, "concierge unavailable")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// requireAdmin writes the failure response itself so call sites can
// bail with a bare return.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	account, ok := s.authorize(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !gate.Admits(domain.ViewAdmin, account) {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

// allowRate writes the throttle response itself; a nil limiter always
// allows.
func (s *Server) allowRate(w http.ResponseWriter, r *http.Request, limiter *ratelimit.FixedWindowLimiter, msg string) bool {
	if limiter == nil {
		return true
	}
	key := r.URL.Path + "|" + clientIP(r)
	if limiter.Allow(key) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, msg)
	return false
}

func clientIP(r *http.Request) string {
	if xfwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xfwd != "" {
		ip := strings.TrimSpace(strings.Split(xfwd, ",")[0])
		if ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}

// helpers

func decodeBody(r *http.Request, dest any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dest)
}

func pathID(r *http.Request, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(r.URL.Path, prefix))
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
