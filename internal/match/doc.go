// Package match finds near-miss names by edit distance. It backs the
// "did you mean" hints of configuration validation and the command line.
package match
