// Package workflow holds the transient form state behind adding a friend
// and splitting a bill. Neither form touches the roster directly: each one
// produces a value (a friend draft or a balance delta) that the session hands
// to the roster store.
package workflow
