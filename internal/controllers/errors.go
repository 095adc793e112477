// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controllers

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by NewStatusController when
	// neither the configuration nor the build metadata carry a version.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
