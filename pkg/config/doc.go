// Package config loads and validates the externally-facing LevelPlan and
// RefineRequest documents, sniffing YAML or JSON by file extension and
// rejecting unknown fields and out-of-range values with
// levelgenerr.SchemaViolation.
package config
