// Package vybory extracts structured election results from the
// election-commission results archive. The archive publishes results as
// loosely-structured HTML whose table layout and caption wording drift
// between election cycles.
//
// This package contains the extraction core: caption matching, layout
// scanning and record extraction over plain Table values, plus the
// domain types and interfaces implemented by subpackages. Following Ben
// Johnson's Standard Package Layout, implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, bloom/).
package vybory
