package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
)

// listState is the local state of the home and my-questions views.
type listState struct {
	questions []models.Question
	search    string
	shown     map[int64]bool
	form      questionForm
	stale     bool
	loadErr   error
}

// questionForm is the add-question form. It keeps its values after a failed
// submit and is cleared after a successful one.
type questionForm struct {
	visible bool
	data    models.QuestionForm
}

func newListState() listState {
	return listState{shown: make(map[int64]bool), stale: true}
}

func (a *App) onListView() bool {
	return a.route.Name == RouteHome || a.route.Name == RouteMyQuestions
}

// invalidate marks the current list for re-fetching on the next render.
func (a *App) invalidate() {
	a.list.stale = true
}

func (a *App) fetch(ctx context.Context) {
	var (
		qs  []models.Question
		err error
	)
	if a.route.Name == RouteMyQuestions {
		qs, err = a.questions.ListMine(ctx)
	} else {
		qs, err = a.questions.ListAll(ctx)
	}
	a.list.stale = false
	a.list.loadErr = err
	if err != nil {
		a.log.Warn(ctx, "question list fetch failed", "route", a.route.Name, "error", err)
		a.flashError(err)
		return
	}
	a.list.questions = qs
}

func (a *App) greeting() string {
	if a.route.Name == RouteMyQuestions && a.currentUser != nil {
		return fmt.Sprintf("Hello %s, these are your Questions!", a.currentUser.FullName())
	}
	if a.loggedIn && a.currentUser != nil {
		return fmt.Sprintf("Hello %s", a.currentUser.FullName())
	}
	return "Welcome to the Questions App"
}

func (a *App) renderList() {
	fmt.Fprintf(a.out, "\n== %s ==\n", a.greeting())
	if a.list.search != "" {
		fmt.Fprintf(a.out, "Search: %q\n", a.list.search)
	}
	if a.list.form.visible {
		fmt.Fprintf(a.out, "Create New Question: %q / %q\n", a.list.form.data.Question, a.list.form.data.Answer)
	}
	if a.list.loadErr != nil {
		fmt.Fprintln(a.out, "Error: Unable to load questions")
		return
	}

	visible := models.FilterQuestions(a.list.questions, a.list.search)
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No questions to show.")
		return
	}
	for _, q := range visible {
		renderCard(a.out, q, a.list.shown[q.ID], a.cardUser())
	}
}

// cardUser is the user edit links are shown for.
func (a *App) cardUser() *models.User {
	if !a.loggedIn {
		return nil
	}
	return a.currentUser
}

// Search filters the visible list by question text. An empty term clears
// the filter.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.onListView() {
		printlnFn("Search is available on the question lists (home, mine)")
		return nil
	}
	a.list.search = term
	a.render(ctx)
	return nil
}

// ToggleAnswer shows or hides the answer on one card.
func (a *App) ToggleAnswer(ctx context.Context, id int64) error {
	if !a.onListView() {
		printlnFn("Answers are shown on the question lists (home, mine)")
		return nil
	}
	a.list.shown[id] = !a.list.shown[id]
	a.render(ctx)
	return nil
}

// AddQuestion opens the question form on a list view and submits it.
func (a *App) AddQuestion(ctx context.Context) error {
	if !a.loggedIn {
		a.flashMessage("Please log in to continue", models.CategoryWarning)
		a.render(ctx)
		return nil
	}
	if !a.onListView() {
		printlnFn("Questions are added from the question lists (home, mine)")
		return nil
	}

	a.list.form.visible = true
	fmt.Fprintln(a.out, "Create New Question")

	question, err := a.promptDefault("Question", a.list.form.data.Question)
	if err != nil {
		return err
	}
	a.list.form.data.Question = question

	answer, err := a.promptDefault("Answer", a.list.form.data.Answer)
	if err != nil {
		return err
	}
	a.list.form.data.Answer = answer

	q, err := a.questions.Create(ctx, a.list.form.data)
	if err != nil {
		a.flashError(err)
		a.render(ctx)
		return err
	}

	a.flashMessage(fmt.Sprintf("%s has been created", q.Question), models.CategorySuccess)
	a.list.questions = append(a.list.questions, *q)
	a.list.form = questionForm{}
	a.invalidate()
	a.render(ctx)
	return nil
}

// promptDefault asks for a value; empty input keeps current.
func (a *App) promptDefault(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s (empty keeps %q)", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}
