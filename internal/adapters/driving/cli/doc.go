// Package cli implements the wordlist command line interface with cobra.
//
// The root command runs a single build: fetch the source list, filter it,
// write the sorted result and print a one-line summary.
package cli
