// Package levelgen builds playable SemanticGrid levels by chaining
// footholds end to end and validating the result with pkg/reach, retrying
// with a reseeded PRNG when an attempt fails to produce a traversable
// layout.
package levelgen
