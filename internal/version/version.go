// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information for the utilities provided in
// this repository.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// semanticBuildAlphabet defines the allowed characters for the build
	// portion of a semantic version string.
	semanticBuildAlphabet = semanticAlphabet + "."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/btcaddr/internal/version.PreRelease=foo"'
	// It MUST only contain characters from semanticAlphabet.
	PreRelease = "beta"

	// BuildMetadata may be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/btcaddr/internal/version.BuildMetadata=foo"'
	// It MUST only contain characters from semanticBuildAlphabet.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.  Invalid characters in the pre-release and
// build metadata are dropped.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	if preRelease := normalize(PreRelease, semanticAlphabet); preRelease != "" {
		version = fmt.Sprintf("%s-%s", version, preRelease)
	}
	if build := normalize(BuildMetadata, semanticBuildAlphabet); build != "" {
		version = fmt.Sprintf("%s+%s", version, build)
	}

	return version
}

// normalize returns str stripped of all characters not in alphabet.
func normalize(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
