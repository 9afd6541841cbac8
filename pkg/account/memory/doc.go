// Package memory provides an in-memory account.Repository and a YAML file
// format for seeding and persisting it between runs of the ledger CLI.
package memory
