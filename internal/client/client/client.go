package client

import (
	"context"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
)

// Client is the remote question board API.
type Client interface {
	Register(ctx context.Context, form models.UserForm) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Token, error)
	GetMe(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, form models.UserForm) (*models.User, error)
	DeleteUser(ctx context.Context, token string) (string, error)

	ListAllQuestions(ctx context.Context) ([]models.Question, error)
	ListMyQuestions(ctx context.Context, token string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, token string, form models.QuestionForm) (*models.Question, error)
	EditQuestion(ctx context.Context, id int64, token string, data models.EditQuestionData) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64, token string) (string, error)
}
