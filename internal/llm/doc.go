// Package llm provides text-completion clients for the supported providers.
//
// Clients are deliberately thin: they accept a fully-built prompt and return
// the raw completion text. Prompt construction and response interpretation
// belong to the caller (see internal/parser).
package llm
