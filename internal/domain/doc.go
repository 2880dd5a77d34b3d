// Package domain holds what every part of the board agrees on about
// failure: the sentinel errors that adapters map to status codes, and
// ValidationError for rejected input. The Project entity is in
// domain/project and the rule checker in domain/validation.
package domain
