// Package mylist turns an exported "My List" page snapshot from a streaming
// service into a CSV file and a static, self-contained viewer page where
// items can be sorted, marked as seen and re-exported.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, csv/, sqlite/).
package mylist
