package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/common"
)

// editQuestionView loads one of the user's own questions and offers to edit
// its answer or delete it. Anything else redirects home with a danger flash.
func (a *App) editQuestionView(ctx context.Context) error {
	id, err := a.route.QuestionID()
	if err != nil {
		a.flashMessage(fmt.Sprintf("Question with ID %s does not exist", a.route.Vars["questionId"]), models.CategoryDanger)
		return a.Navigate(ctx, "/")
	}

	q, err := a.questions.LoadForEdit(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotOwner) {
			a.flashMessage("You do not have permission to edit this question", models.CategoryDanger)
		} else {
			a.flashError(err)
		}
		return a.Navigate(ctx, "/")
	}

	a.renderTitle("Edit Question")
	fmt.Fprintf(a.out, "Question: %s\nAnswer:   %s\n", q.Question, q.Answer)

	action, err := getSimpleText(a.reader, "Action: (e)dit answer, (d)elete question, (c)ancel", a.out)
	if err != nil {
		return a.abort(err)
	}

	switch action {
	case "e", "edit":
		return a.editAnswer(ctx, q)
	case "d", "delete":
		return a.deleteQuestion(ctx, q)
	}
	return a.Navigate(ctx, "/")
}

func (a *App) editAnswer(ctx context.Context, q *models.Question) error {
	answer, err := a.promptDefault("Question Answer", q.Answer)
	if err != nil {
		return a.abort(err)
	}

	updated, err := a.questions.Edit(ctx, q.ID, models.EditQuestionData{Answer: answer})
	if err != nil {
		a.flashError(err)
		return a.Navigate(ctx, "/")
	}

	a.flashMessage(fmt.Sprintf("The answer to %s has been updated to %s", updated.Question, updated.Answer), models.CategorySuccess)
	return a.Navigate(ctx, "/")
}

func (a *App) deleteQuestion(ctx context.Context, q *models.Question) error {
	prompt := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", q.Question)
	ok, err := getConfirmation(a.reader, prompt, a.out)
	if err != nil {
		return a.abort(err)
	}
	if !ok {
		return a.Navigate(ctx, a.route.Path)
	}

	msg, err := a.questions.Delete(ctx, q.ID)
	if err != nil {
		a.flashError(err)
		return a.Navigate(ctx, "/")
	}

	a.flashMessage(msg, models.CategoryPrimary)
	return a.Navigate(ctx, "/")
}
