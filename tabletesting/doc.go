// Package tabletesting provides shared fixtures for the column and tuple
// tests: a test context bound to a private update graph, seeded data
// generators and call counting doubles.
package tabletesting
