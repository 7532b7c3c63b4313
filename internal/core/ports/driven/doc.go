// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): embedding encoders, vector indexes, ranking
// models, explanation services, and storage.
package driven
