// Package client contains the client-side building blocks for talking to the
// question board API.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): one method per remote
//     operation: Register, Login, GetMe, UpdateUser, DeleteUser,
//     ListAllQuestions, ListMyQuestions, CreateQuestion, EditQuestion,
//     DeleteQuestion.
//  2. An HTTP implementation (see HTTPClient) built on a small requester
//     factory: NoAuth, BasicAuth and TokenAuth produce requesters that share
//     one base address and differ only in the Authorization header.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns an *APIError. Its message is what the user
// should see: the server's error payload when there is one, otherwise an
// operation-specific or generic text. APIError unwraps to ErrUnavailable,
// ErrUnauthorized, ErrNotFound or ErrRequestFailed for errors.Is checks.
//
// Each call is a single request: no retries, no batching, no caching.
package client
