// Package fakeapi is an in-memory stand-in for the question board REST API,
// served over httptest. Tests across the client packages use it to exercise
// the real HTTP client end to end.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/gorilla/mux"
)

type account struct {
	user     models.User
	password string
}

type failure struct {
	status int
	body   string
}

// Server is the fake API. The zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	accounts   map[int64]*account
	tokens     map[string]int64
	questions  map[int64]*models.Question
	nextUser   int64
	nextQ      int64
	nextToken  int
	fail       *failure
	headers    http.Header
	requests   []string
	expiration func() string
}

// New starts a fake API server. Callers must Close it.
func New() *Server {
	s := &Server{
		accounts:  make(map[int64]*account),
		tokens:    make(map[string]int64),
		questions: make(map[int64]*models.Question),
		expiration: func() string {
			return time.Now().Add(time.Hour).UTC().Format(time.RFC1123)
		},
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/user", s.register).Methods(http.MethodPost)
	r.HandleFunc("/user", s.updateUser).Methods(http.MethodPut)
	r.HandleFunc("/user", s.deleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/user/me", s.me).Methods(http.MethodGet)
	r.HandleFunc("/login", s.login).Methods(http.MethodGet)
	r.HandleFunc("/question/all", s.allQuestions).Methods(http.MethodGet)
	r.HandleFunc("/question", s.myQuestions).Methods(http.MethodGet)
	r.HandleFunc("/question", s.createQuestion).Methods(http.MethodPost)
	r.HandleFunc("/question/{id:[0-9]+}", s.editQuestion).Methods(http.MethodPut)
	r.HandleFunc("/question/{id:[0-9]+}", s.deleteQuestion).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// SeedUser registers an account directly and returns it.
func (s *Server) SeedUser(email, password, first, last string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUser(models.UserForm{Email: email, Password: password, FirstName: first, LastName: last})
}

// SeedToken issues a bearer token for userID without a login round-trip.
func (s *Server) SeedToken(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueToken(userID)
}

// SeedQuestion stores a question authored by authorID.
func (s *Server) SeedQuestion(authorID int64, question, answer string) models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addQuestion(authorID, question, answer)
}

// FailNext makes the next request fail with status and raw body.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = &failure{status: status, body: body}
}

// SetExpiration overrides the token_expiration value sent on login. An
// empty string omits it from the response.
func (s *Server) SetExpiration(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiration = func() string { return v }
}

// LastHeader returns a header of the most recent request.
func (s *Server) LastHeader(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers.Get(name)
}

// Requests returns "METHOD /path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// QuestionCount returns how many questions are stored.
func (s *Server) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.headers = r.Header.Clone()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		f := s.fail
		s.fail = nil
		s.mu.Unlock()

		if f != nil {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) addUser(form models.UserForm) models.User {
	s.nextUser++
	u := models.User{UserID: s.nextUser, Email: form.Email, FirstName: form.FirstName, LastName: form.LastName}
	s.accounts[u.UserID] = &account{user: u, password: form.Password}
	return u
}

func (s *Server) issueToken(userID int64) string {
	s.nextToken++
	t := fmt.Sprintf("token-%d-%d", userID, s.nextToken)
	s.tokens[t] = userID
	return t
}

func (s *Server) addQuestion(authorID int64, question, answer string) models.Question {
	s.nextQ++
	q := &models.Question{
		ID:        s.nextQ,
		Question:  question,
		Answer:    answer,
		CreatedOn: time.Now().UTC().Format(time.RFC1123),
		Author:    s.accounts[authorID].user,
	}
	s.questions[q.ID] = q
	return *q
}

func (s *Server) sortedQuestions(keep func(*models.Question) bool) []models.Question {
	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// bearer resolves the caller's account; must be called with s.mu held.
func (s *Server) bearer(r *http.Request) (*account, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return nil, false
	}
	id, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	acc, ok := s.accounts[id]
	return acc, ok
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if form.Email == "" || form.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.Email == form.Email {
			writeError(w, http.StatusBadRequest, "A user with that email already exists")
			return
		}
	}
	writeJSON(w, http.StatusCreated, s.addUser(form))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing credentials")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.Email == email && acc.password == password {
			resp := map[string]string{"token": s.issueToken(acc.user.UserID)}
			if exp := s.expiration(); exp != "" {
				resp["token_expiration"] = exp
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}
	writeError(w, http.StatusUnauthorized, "Invalid email or password")
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if form.Email != "" {
		acc.user.Email = form.Email
	}
	if form.FirstName != "" {
		acc.user.FirstName = form.FirstName
	}
	if form.LastName != "" {
		acc.user.LastName = form.LastName
	}
	if form.Password != "" {
		acc.password = form.Password
	}
	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	delete(s.accounts, acc.user.UserID)
	for t, id := range s.tokens {
		if id == acc.user.UserID {
			delete(s.tokens, t)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"success": "User has been deleted"})
}

func (s *Server) allQuestions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"questions": s.sortedQuestions(func(*models.Question) bool { return true }),
	})
}

func (s *Server) myQuestions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	id := acc.user.UserID
	writeJSON(w, http.StatusOK, map[string]any{
		"questions": s.sortedQuestions(func(q *models.Question) bool { return q.Author.UserID == id }),
	})
}

func (s *Server) createQuestion(w http.ResponseWriter, r *http.Request) {
	var form models.QuestionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if form.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	writeJSON(w, http.StatusCreated, s.addQuestion(acc.user.UserID, form.Question, form.Answer))
}

// ownedQuestion resolves {id} for the caller, writing the error response
// itself when the question is missing or foreign. Must hold s.mu.
func (s *Server) ownedQuestion(w http.ResponseWriter, r *http.Request) (*models.Question, bool) {
	acc, ok := s.bearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	q, ok := s.questions[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if q.Author.UserID != acc.user.UserID {
		writeError(w, http.StatusForbidden, "You do not have permission to edit this question")
		return nil, false
	}
	return q, true
}

func (s *Server) editQuestion(w http.ResponseWriter, r *http.Request) {
	var data models.EditQuestionData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.ownedQuestion(w, r)
	if !ok {
		return
	}
	q.Answer = data.Answer
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.ownedQuestion(w, r)
	if !ok {
		return
	}
	delete(s.questions, q.ID)
	writeJSON(w, http.StatusOK, map[string]string{"success": fmt.Sprintf("%s has been deleted", q.Question)})
}
