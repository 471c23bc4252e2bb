package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/quizboard/internal/client/client"
	"github.com/dmitrijs2005/quizboard/internal/client/config"
	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/client/services"
	"github.com/dmitrijs2005/quizboard/internal/common"
	"github.com/dmitrijs2005/quizboard/internal/logging"
)

// App is the root shell. It owns the session state (logged-in flag, current
// user, flash message) and the current route.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	auth      services.AuthService
	questions services.QuestionService
	router    *Router
	reader    *bufio.Reader
	out       io.Writer

	loggedIn    bool
	currentUser *models.User
	flash       models.Flash
	theme       theme
	route       Route
	list        listState
}

// NewApp opens the local session store and builds the API services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	session := services.NewSessionStore(db, nil)
	a := newApp(
		services.NewAuthService(apiClient, session, log, c.DefaultTokenTTL),
		services.NewQuestionService(apiClient, session, log),
		log,
		bufio.NewReader(os.Stdin),
		os.Stdout,
	)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(auth services.AuthService, questions services.QuestionService, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		log:       log,
		auth:      auth,
		questions: questions,
		router:    NewRouter(),
		reader:    reader,
		out:       out,
		theme:     themeDark,
	}
}

// Run restores the persisted session, opens the home view and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	printlnFn("Welcome to QuizBoard CLI (type 'help' for commands)")
	a.restore(ctx)
	_ = a.Navigate(ctx, "/")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	if a.currentUser != nil {
		return fmt.Sprintf("(%s) %s", a.currentUser.FullName(), a.route.Path)
	}
	return a.route.Path
}

// restore is the start-up session check. Any failure presents the app as
// logged out.
func (a *App) restore(ctx context.Context) {
	u, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.loggedIn = true
		a.currentUser = u
	case errors.Is(err, common.ErrNotLoggedIn):
	case errors.Is(err, common.ErrSessionExpired):
		a.log.Info(ctx, "stored session expired")
	default:
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
}

func (a *App) flashMessage(msg string, c models.Category) {
	a.flash = models.Flash{Message: msg, Category: c}
}

func (a *App) flashError(err error) {
	a.flashMessage(client.Message(err), models.CategoryDanger)
}

// Navigate opens path. Routes that need a session redirect to the login view
// when there is none.
func (a *App) Navigate(ctx context.Context, path string) error {
	r, ok := a.router.Resolve(path)
	if !ok {
		printlnFn("Page not found:", path)
		return fmt.Errorf("%w: %s", common.ErrorNotFound, path)
	}

	if r.requiresLogin() && !a.loggedIn {
		a.flashMessage("Please log in to continue", models.CategoryWarning)
		r, _ = a.router.Resolve("/login")
	}

	a.route = r
	a.log.Debug(ctx, "navigate", "route", r.Name, "path", r.Path)

	switch r.Name {
	case RouteHome, RouteMyQuestions:
		a.list = newListState()
		a.render(ctx)
		return nil
	case RouteRegister:
		return a.registerView(ctx)
	case RouteLogin:
		return a.loginView(ctx)
	case RouteUser:
		return a.editUserView(ctx)
	case RouteEditQuestion:
		return a.editQuestionView(ctx)
	}
	return nil
}

// abort leaves a form view after an input error without rendering.
func (a *App) abort(err error) error {
	a.route, _ = a.router.Resolve("/")
	a.list = newListState()
	return err
}

// render redraws the navigation bar, the alert banner and, on list views,
// the question list.
func (a *App) render(ctx context.Context) {
	if a.onListView() && a.list.stale {
		a.fetch(ctx)
	}

	renderNav(a.out, a.loggedIn, a.theme)
	renderAlert(a.out, a.flash)

	if a.onListView() {
		a.renderList()
	}
}

// Dismiss closes the alert banner.
func (a *App) Dismiss(ctx context.Context) error {
	a.flash = models.Flash{}
	a.render(ctx)
	return nil
}

func (a *App) ToggleTheme(ctx context.Context) error {
	a.theme = a.theme.toggled()
	a.render(ctx)
	return nil
}

func (a *App) Help() {
	renderHelp(a.out, a.loggedIn)
}
