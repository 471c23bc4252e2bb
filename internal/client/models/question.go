package models

import "strings"

// Question is a quiz question with its answer, owned by Author.
type Question struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedOn string `json:"created_on"`
	Author    User   `json:"author"`
}

// OwnedBy reports whether u authored the question. A nil user owns nothing.
func (q Question) OwnedBy(u *User) bool {
	return u != nil && q.Author.UserID == u.UserID
}

// Matches is the search predicate: a case-insensitive substring match over
// the question text only.
func (q Question) Matches(term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}

// FilterQuestions returns the questions whose text matches term, preserving
// order. An empty term matches everything.
func FilterQuestions(qs []Question, term string) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if q.Matches(term) {
			out = append(out, q)
		}
	}
	return out
}

// QuestionForm is the payload for creating a question.
type QuestionForm struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EditQuestionData is the payload for editing a question; only the answer
// can change.
type EditQuestionData struct {
	Answer string `json:"answer"`
}
