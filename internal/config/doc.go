// Package config defines the configuration document model and the pure
// operations over it: deep merge across layers, structural diff with source
// attribution, and dot-notation key-path mutation.
//
// The document preserves unknown top-level JSON fields across read-modify-
// write cycles, so configurations written by newer tool versions survive
// edits made by this one.
package config
