package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/fatih/color"
)

var categoryColors = map[models.Category]*color.Color{
	models.CategoryPrimary:   color.New(color.FgBlue),
	models.CategorySecondary: color.New(color.FgHiBlack),
	models.CategorySuccess:   color.New(color.FgGreen),
	models.CategoryDanger:    color.New(color.FgRed, color.Bold),
	models.CategoryWarning:   color.New(color.FgYellow),
	models.CategoryInfo:      color.New(color.FgCyan),
	models.CategoryLight:     color.New(color.FgWhite),
	models.CategoryDark:      color.New(color.FgBlack, color.BgWhite),
}

// renderAlert writes the flash banner. An empty flash renders nothing.
func renderAlert(w io.Writer, f models.Flash) {
	if f.Empty() {
		return
	}
	c, ok := categoryColors[f.Category]
	if !ok {
		c = color.New(color.Reset)
	}
	c.Fprintf(w, "[%s] %s", f.Category, f.Message)
	fmt.Fprintln(w, "  (dismiss to close)")
}
