package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/fatih/color"
)

var cardHeader = color.New(color.Bold)

// renderCard writes one question card. The edit hint is shown only to the
// question's author.
func renderCard(w io.Writer, q models.Question, showAnswer bool, current *models.User) {
	cardHeader.Fprintf(w, "#%d  %s", q.ID, q.CreatedOn)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s\n", q.Question)
	if showAnswer {
		fmt.Fprintf(w, "    Answer: %s\n", q.Answer)
	} else {
		fmt.Fprintf(w, "    View Answer [answer %d]\n", q.ID)
	}
	if q.OwnedBy(current) {
		fmt.Fprintf(w, "    Edit Question [edit %d]\n", q.ID)
	}
}
