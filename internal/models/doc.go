// Package models defines the core domain types for the billing backend.
//
// # Design principles
//
//  1. **Append-only ledger**: bills and their lines are written once and
//     never mutated; corrections happen by issuing a new bill.
//  2. **Snapshot, don't join**: each bill line denormalizes the item name
//     and unit price at time of sale, so later inventory edits and deletes
//     cannot rewrite history.
//  3. **Exact money**: prices, quantities and totals are decimal.Decimal,
//     so `total == quantity * price` holds without floating drift.
//  4. **Avoid circular references**: relationships use ID strings instead
//     of pointers.
package models
