// Package genrng provides the deterministic stepping pseudo-random number
// generator used by the level generator and region refiner. Unlike
// pkg/rng in a sibling dungeon-generation design (which derives per-stage
// seeds from a master seed via SHA-256 over math/rand), this engine's
// generation loop is single-stage and reseeds per retry attempt
// (seed + attempt), so genrng steps a fixed 32-bit mulberry32-style
// generator directly from that integer rather than deriving sub-seeds.
// The engine must never reach for a process-wide random source; every
// random decision flows through an *RNG created here.
package genrng
