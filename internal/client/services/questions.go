package services

import (
	"context"

	"github.com/dmitrijs2005/quizboard/internal/client/client"
	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/common"
	"github.com/dmitrijs2005/quizboard/internal/logging"
)

// QuestionService wraps the question endpoints, attaching the stored token.
type QuestionService interface {
	ListAll(ctx context.Context) ([]models.Question, error)
	ListMine(ctx context.Context) ([]models.Question, error)
	Create(ctx context.Context, form models.QuestionForm) (*models.Question, error)
	Edit(ctx context.Context, id int64, data models.EditQuestionData) (*models.Question, error)
	Delete(ctx context.Context, id int64) (string, error)
	LoadForEdit(ctx context.Context, id int64) (*models.Question, error)
}

type questionService struct {
	client  client.Client
	session SessionStore
	log     logging.Logger
}

func NewQuestionService(c client.Client, session SessionStore, log logging.Logger) QuestionService {
	return &questionService{client: c, session: session, log: log.With("component", "questions")}
}

func (s *questionService) ListAll(ctx context.Context) ([]models.Question, error) {
	return s.client.ListAllQuestions(ctx)
}

func (s *questionService) ListMine(ctx context.Context) ([]models.Question, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListMyQuestions(ctx, token)
}

func (s *questionService) Create(ctx context.Context, form models.QuestionForm) (*models.Question, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	q, err := s.client.CreateQuestion(ctx, token, form)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "question created", "id", q.ID)
	return q, nil
}

func (s *questionService) Edit(ctx context.Context, id int64, data models.EditQuestionData) (*models.Question, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.EditQuestion(ctx, id, token, data)
}

func (s *questionService) Delete(ctx context.Context, id int64) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", err
	}
	return s.client.DeleteQuestion(ctx, id, token)
}

// LoadForEdit finds question id among the caller's own questions and checks
// that its author is the cached current user. A question that is missing or
// authored by someone else yields common.ErrNotOwner.
func (s *questionService) LoadForEdit(ctx context.Context, id int64) (*models.Question, error) {
	mine, err := s.ListMine(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	for _, q := range mine {
		if q.ID != id {
			continue
		}
		if !q.OwnedBy(current) {
			return nil, common.ErrNotOwner
		}
		return &q, nil
	}
	return nil, common.ErrNotOwner
}
