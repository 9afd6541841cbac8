// Package baking is a second consumer of rop.Either: a pie is validated,
// cooked, packed, delivered and rated, and the first failing step decides
// the outcome of the whole pipeline.
package baking
