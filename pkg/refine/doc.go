// Package refine regenerates a rectangular sub-region of an existing
// SemanticGrid in place, bridging a detected seam with a fresh chain of
// footholds while leaving every cell outside the rectangle untouched.
// Refine never fails loudly: an exhausted retry loop is reported, not
// raised, since a refinement attempt has a safe fallback (the original
// grid).
package refine
