// Package normalisers holds implementations of the WordNormaliser port.
// Each normaliser decides which raw source lines become output words.
package normalisers
