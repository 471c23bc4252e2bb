package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuestions() []Question {
	return []Question{
		{ID: 1, Question: "What is the capital of France?", Answer: "Paris"},
		{ID: 2, Question: "How many legs does a spider have?", Answer: "Eight"},
		{ID: 3, Question: "Which planet is known as the Red Planet?", Answer: "france"},
	}
}

func TestFilterQuestions(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int64
	}{
		{name: "empty term matches everything", term: "", want: []int64{1, 2, 3}},
		{name: "case-insensitive", term: "FRANCE", want: []int64{1}},
		{name: "answer text is not searched", term: "paris", want: []int64{}},
		{name: "substring in the middle", term: "legs", want: []int64{2}},
		{name: "shared substring", term: "planet", want: []int64{3}},
		{name: "no match", term: "zebra", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterQuestions(sampleQuestions(), tt.term)
			ids := make([]int64, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQuestion_OwnedBy(t *testing.T) {
	q := Question{ID: 7, Author: User{UserID: 42}}

	assert.True(t, q.OwnedBy(&User{UserID: 42}))
	assert.False(t, q.OwnedBy(&User{UserID: 43}))
	assert.False(t, q.OwnedBy(nil))
}

func TestUserForm_PasswordsMatch(t *testing.T) {
	assert.True(t, UserForm{Password: "s3cret", ConfirmPassword: "s3cret"}.PasswordsMatch())
	assert.False(t, UserForm{Password: "s3cret", ConfirmPassword: "S3cret"}.PasswordsMatch())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
}
