// Package gorm implements the store interfaces on top of gorm/postgres.
//
// Encryption of Telegram identifiers and bot tokens happens in the model
// hooks, so these stores traffic in plaintext values and rely on the
// cipher placed in the connection context by db.Connect.
package gorm
