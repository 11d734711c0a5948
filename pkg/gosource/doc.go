// Package gosource exposes the public contracts for the loading and parsing
// stages of the builder generator. Implementations live under internal/gosource
// to keep go/ast traversal details hidden from consumers.
package gosource
