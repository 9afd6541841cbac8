// Package tiny provides a minimal fluent Chain[F, S] for synchronous
// composition of rop.Either values that keep a single success type.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose either-returning or error-returning functions
// - Map: transform the value
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: pick among alternative chains
// - Ensure: trigger side effects per branch
// - Finally: reduce to a concrete value via handlers
//
// Tiny fits step-by-step updates of one value, such as applying a list of
// account operations, where every step maps S to S.
package tiny
