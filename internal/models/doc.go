// Package models defines the core domain models for Split Happens.
//
// Members register accounts, connect as friends, form groups, and record
// shared expenses. An expense is split among a participant set; splits are
// created atomically with their parent expense and are immutable afterwards.
// Settlements record payments between members that reduce their net debt.
//
// Design principles:
//
//  1. Relationships are ID strings, not pointers, to avoid circular references.
//  2. Amounts are money.Amount (int64 minor units) everywhere; never floats.
//  3. Timestamps are Unix seconds.
package models
