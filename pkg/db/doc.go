// Package db provides database connection utilities.
//
// Connect opens a gorm handle to postgres and, when a cipher is supplied,
// threads it through the connection context for the model-layer encryption
// hooks.
package db
