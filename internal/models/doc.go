// Package models defines the core domain models for Eat-'N-Split.
//
// # Models
//
//   - Friend: one entry in the roster, carrying the running balance
//     between the user and that friend
//   - Payer: who fronted a split bill
//   - Settlement: a ledger record of one applied bill split
//
// # Design Principles
//
//  1. Balances are always expressed from the user's point of view
//  2. Relationships use ID strings instead of pointers, so a selection or a
//     ledger entry never holds a stale copy of a friend
//  3. Friends are only created and mutated by the roster package
package models
