// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// BOOK_LIBRARY_SERVER_ADDRESS.
const EnvPrefix = "BOOK_LIBRARY_"

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags, all under
// [EnvPrefix].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
