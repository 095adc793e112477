// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Status is the body of GET api/status. Fields are untagged so the
// configured contract resolver decides their JSON names.
type Status struct {
	Name      string
	Version   string
	BuildDate string
	Commit    string
	StartedAt time.Time
	// Uptime is rendered with time.Duration.String, e.g. "1h2m3s".
	Uptime string
}
