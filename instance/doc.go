// SPDX-License-Identifier: MIT

// Package instance reads and writes pickup problem instances.
//
// File layout (whitespace-separated, one record per line):
//
//	α                      trade-off coefficient, e.g. 0.3 or 1.0
//	n m                    vertex count, friend count
//	h₁ h₂ … hₘ             friend homes (blank line when m = 0)
//	v deg(v)               for v = 0 … n-1, followed by
//	u w                    deg(v) neighbor lines, ascending u
//
// Every undirected edge is listed from both endpoints with the same
// positive integer weight. Read rejects files that break any of these
// rules; Write produces exactly this layout, so the two round-trip.
package instance
