// Package services holds the application services built on package account:
// transfers between account values or stored users, and cash deposits and
// withdrawals against an account.Repository. Each service logs outcomes
// with zap and returns the account failure unchanged.
package services
