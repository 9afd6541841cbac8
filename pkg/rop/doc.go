// Package rop defines Either, a disjoint result holding exactly one of a
// failure value or a success value, and the functions that compose it.
//
// Composition short-circuits: once a step yields a failure, Map and Bind
// return that failure unchanged and never call the functions passed to
// them. Bind satisfies the monad laws:
//
//	Bind(Succeed(v), f)          == f(v)
//	Bind(r, Succeed)             == r
//	Bind(Bind(r, f), g)          == Bind(r, func(v) { return Bind(f(v), g) })
//	Map(r, f)                    == Bind(r, func(v) { return Succeed(f(v)) })
//
// Higher level helpers live in the sub packages:
// - solo: context-aware single-value primitives (Validate, Switch, Try, ...)
// - chain: fluent chains that may change the success type
// - tiny: fluent chains over a single success type
package rop
