// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, addresses, errors) and contracts (interfaces)
// only; all behavior lives in the packages that implement them.
package domain
