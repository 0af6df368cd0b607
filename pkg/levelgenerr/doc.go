// Package levelgenerr provides the shared error-kind taxonomy used across
// the level-generation engine: out-of-bounds access, corrupt or mismatched
// serialised grids, schema violations on ingested plans, and generator
// exhaustion. Region refinement failures are reported through a result
// value instead (see pkg/refine.RefineReport) and are not part of this
// taxonomy.
package levelgenerr
