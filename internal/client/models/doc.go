// Package models defines the client-side mirrors of the question board API
// entities plus the client-only UI types (forms, flash messages).
package models
