package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type theme string

const (
	themeDark  theme = "dark"
	themeLight theme = "light"
)

func (t theme) toggled() theme {
	if t == themeDark {
		return themeLight
	}
	return themeDark
}

func (t theme) color() *color.Color {
	if t == themeLight {
		return color.New(color.FgBlack, color.BgWhite)
	}
	return color.New(color.FgWhite, color.BgBlack)
}

type navItem struct {
	command string
	label   string
}

// navItems is the navigation bar for the given login state.
func navItems(loggedIn bool) []navItem {
	if loggedIn {
		return []navItem{
			{command: "add", label: "Create Question"},
			{command: "mine", label: "My Questions"},
			{command: "user", label: "Edit User"},
			{command: "logout", label: "Log Out"},
		}
	}
	return []navItem{
		{command: "register", label: "Register Account"},
		{command: "login", label: "Log In"},
	}
}

// toolItems are the page controls available in every state.
var toolItems = []navItem{
	{command: "search [term]", label: "Search Questions"},
	{command: "answer <id>", label: "View Answer"},
	{command: "dismiss", label: "Close the alert"},
	{command: "theme", label: "Change Background"},
	{command: "go <route>", label: "Open a route"},
	{command: "exit", label: "Quit"},
}

// renderNav writes the one-line navigation bar.
func renderNav(w io.Writer, loggedIn bool, t theme) {
	items := navItems(loggedIn)
	links := make([]string, 0, len(items))
	for _, it := range items {
		links = append(links, fmt.Sprintf("%s [%s]", it.label, it.command))
	}
	t.color().Fprint(w, " Quiz App [home] ")
	fmt.Fprintln(w, " "+strings.Join(links, " | "))
}

// renderHelp lists every command available in the current state.
func renderHelp(w io.Writer, loggedIn bool) {
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintf(w, "  %-16s %s\n", "home", "Questions")
	for _, it := range navItems(loggedIn) {
		fmt.Fprintf(w, "  %-16s %s\n", it.command, it.label)
	}
	if loggedIn {
		fmt.Fprintf(w, "  %-16s %s\n", "edit <id>", "Edit Question")
	}
	for _, it := range toolItems {
		fmt.Fprintf(w, "  %-16s %s\n", it.command, it.label)
	}
}
