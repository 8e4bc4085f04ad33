// Package tripledger keeps the books for a shared trip: participant groups
// log expenses in the destination currency, and the package computes each
// group's fair share of the total spend and the minimal list of transfers
// that settles everyone up.
//
// The computation core (Allocate, Settle, AggregateCategories, NewReport)
// is pure: it recomputes everything from a ledger snapshot on every call,
// so there is no cached state to go stale. Persistence is one JSON document
// per ledger in a local books directory, with legacy document shapes
// upgraded at decode time.
package tripledger
