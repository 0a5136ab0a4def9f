// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds plain value types shared between Montar packages.
package models

// Unknown replaces build metadata that was not injected at link time.
const Unknown = "N/A"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]. Empty values become [Unknown].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string {
	return b.version
}

// Date returns the build timestamp string.
func (b BuildInfo) Date() string {
	return b.date
}

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string {
	return b.commit
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}

	return s
}
