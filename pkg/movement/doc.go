// Package movement defines the coarse platformer physics parameters shared
// by the reachability validator, the generator, and the region refiner.
// Trajectories are linear approximations, not a physics simulation.
package movement
