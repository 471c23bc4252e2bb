package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Navigate(ctx context.Context, path string) error {
	f.calls = append(f.calls, "go "+path)
	if path == "/login" {
		f.loggedIn = true
	}
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.calls = append(f.calls, "search "+term)
	return nil
}
func (f *fakeExec) AddQuestion(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) ToggleAnswer(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "answer")
	return nil
}
func (f *fakeExec) Dismiss(ctx context.Context) error {
	f.calls = append(f.calls, "dismiss")
	return nil
}
func (f *fakeExec) ToggleTheme(ctx context.Context) error {
	f.calls = append(f.calls, "theme")
	return nil
}
func (f *fakeExec) Help() { f.calls = append(f.calls, "help") }

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		if len(a) > 0 {
			if s, ok := a[0].(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := rdr("help\nlogin\nmine\nedit 3\ngo /user\nsearch What is\nsearch\nadd\nanswer 7\ndismiss\ntheme\nhome\nregister\nuser\nlogout\nexit\nhelp\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "status" }, input)

	assert.Equal(t, []string{
		"help",
		"go /login",
		"go /my-questions",
		"go /edit/3",
		"go /user",
		"search What is",
		"search ",
		"add",
		"answer",
		"dismiss",
		"theme",
		"go /",
		"go /register",
		"go /user",
		"logout",
	}, exec.calls, "nothing after exit is executed")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("edit\ngo\nanswer\nanswer x\nfoobar\n\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: edit <id>")
	assert.Contains(t, *lines, "Usage: go <route>")
	assert.Contains(t, *lines, "Usage: answer <id>")
	assert.Contains(t, *lines, "Invalid question id:")
	assert.Contains(t, *lines, "Unknown command:")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("mine"))

	assert.Equal(t, []string{"go /my-questions"}, exec.calls)
}
