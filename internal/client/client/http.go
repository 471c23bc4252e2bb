package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/logging"
)

const (
	userEndpoint     = "/user"
	questionEndpoint = "/question"
	loginEndpoint    = "/login"
)

// HTTPClient implements Client over the REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient validates baseURL and returns a client bound to it.
func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     log.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type questionsResponse struct {
	Questions []models.Question `json:"questions"`
}

type successResponse struct {
	Success string `json:"success"`
}

func questionPath(id int64) string {
	return questionEndpoint + "/" + strconv.FormatInt(id, 10)
}

func missingQuestion(id int64) string {
	return fmt.Sprintf("Question with ID %d does not exist", id)
}

func (c *HTTPClient) Register(ctx context.Context, form models.UserForm) (*models.User, error) {
	var u models.User
	if err := c.NoAuth().Do(ctx, http.MethodPost, userEndpoint, form, &u, ""); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	var t models.Token
	if err := c.BasicAuth(email, password).Do(ctx, http.MethodGet, loginEndpoint, nil, &t, ""); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) GetMe(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.TokenAuth(token).Do(ctx, http.MethodGet, userEndpoint+"/me", nil, &u, ""); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, form models.UserForm) (*models.User, error) {
	var u models.User
	if err := c.TokenAuth(token).Do(ctx, http.MethodPut, userEndpoint, form, &u, ""); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string) (string, error) {
	var s successResponse
	if err := c.TokenAuth(token).Do(ctx, http.MethodDelete, userEndpoint, nil, &s, ""); err != nil {
		return "", err
	}
	return s.Success, nil
}

func (c *HTTPClient) ListAllQuestions(ctx context.Context) ([]models.Question, error) {
	var q questionsResponse
	if err := c.NoAuth().Do(ctx, http.MethodGet, questionEndpoint+"/all", nil, &q, ""); err != nil {
		return nil, err
	}
	if q.Questions == nil {
		return []models.Question{}, nil
	}
	return q.Questions, nil
}

// ListMyQuestions lists the caller's questions. The bearer token is attached
// when one is given; an empty token sends the request unauthenticated.
func (c *HTTPClient) ListMyQuestions(ctx context.Context, token string) ([]models.Question, error) {
	r := c.NoAuth()
	if token != "" {
		r = c.TokenAuth(token)
	}

	var q questionsResponse
	if err := r.Do(ctx, http.MethodGet, questionEndpoint, nil, &q, "Questions do not exist"); err != nil {
		return nil, err
	}
	if q.Questions == nil {
		return []models.Question{}, nil
	}
	return q.Questions, nil
}

func (c *HTTPClient) CreateQuestion(ctx context.Context, token string, form models.QuestionForm) (*models.Question, error) {
	var q models.Question
	if err := c.TokenAuth(token).Do(ctx, http.MethodPost, questionEndpoint, form, &q, ""); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *HTTPClient) EditQuestion(ctx context.Context, id int64, token string, data models.EditQuestionData) (*models.Question, error) {
	var q models.Question
	if err := c.TokenAuth(token).Do(ctx, http.MethodPut, questionPath(id), data, &q, missingQuestion(id)); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *HTTPClient) DeleteQuestion(ctx context.Context, id int64, token string) (string, error) {
	var s successResponse
	if err := c.TokenAuth(token).Do(ctx, http.MethodDelete, questionPath(id), nil, &s, missingQuestion(id)); err != nil {
		return "", err
	}
	return s.Success, nil
}
