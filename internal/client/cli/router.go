package cli

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// Route names.
const (
	RouteHome         = "home"
	RouteRegister     = "register"
	RouteLogin        = "login"
	RouteUser         = "user"
	RouteMyQuestions  = "my-questions"
	RouteEditQuestion = "edit-question"
)

// Route is a resolved navigation target.
type Route struct {
	Name string
	Path string
	Vars map[string]string
}

// QuestionID returns the :questionId parameter of an edit route.
func (r Route) QuestionID() (int64, error) {
	return strconv.ParseInt(r.Vars["questionId"], 10, 64)
}

// requiresLogin reports whether the route is only reachable with a session.
func (r Route) requiresLogin() bool {
	switch r.Name {
	case RouteUser, RouteMyQuestions, RouteEditQuestion:
		return true
	}
	return false
}

// Router maps client-side paths to routes using gorilla/mux templates.
type Router struct {
	mux *mux.Router
}

func NewRouter() *Router {
	r := mux.NewRouter()
	r.Path("/").Name(RouteHome)
	r.Path("/register").Name(RouteRegister)
	r.Path("/login").Name(RouteLogin)
	r.Path("/user").Name(RouteUser)
	r.Path("/my-questions").Name(RouteMyQuestions)
	r.Path("/edit/{questionId:[0-9]+}").Name(RouteEditQuestion)
	return &Router{mux: r}
}

// Resolve matches path against the route table. A missing leading slash and
// a trailing slash are tolerated.
func (r *Router) Resolve(path string) (Route, bool) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Route{}, false
	}

	var m mux.RouteMatch
	if !r.mux.Match(req, &m) {
		return Route{}, false
	}
	return Route{Name: m.Route.GetName(), Path: path, Vars: m.Vars}, true
}
