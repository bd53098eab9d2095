// Package uracheck compares fortune-telling service pages against reference
// data. It extracts menu listings, subtitle sequences and page metadata from
// vendor-specific HTML, normalizes them into a common tabular shape, and
// diffs them against a CSV export or against each other.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, anthropic/, lru/).
package uracheck
