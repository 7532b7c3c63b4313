// Package domain contains the core business entities for outfit
// recommendation: catalog items, user context, outfit candidates, feature
// vectors, and recommendation outputs. Domain types have no dependencies on
// adapters or infrastructure.
package domain
