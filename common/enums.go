// Enums shared by configuration and the stylesheet scanner live in their own
// package so css does not have to depend on config.
package common

//go:generate go tool go-enum --marshal --names

// MatchMode defines how font-face rules are located in the stylesheet.
// ENUM(line, block)
type MatchMode int

// UnclosedHeaderPolicy defines what to do when leading comment is never closed.
// ENUM(header, error)
type UnclosedHeaderPolicy int
