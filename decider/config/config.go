// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when GOOGLE_MAPS_API_KEY is not set in the
// environment (or a .env file).
var ErrMissingAPIKey = errors.New("GOOGLE_MAPS_API_KEY is not set")

type Config struct {
	GoogleMapsKey  string
	RequestTimeout time.Duration
}

// FromEnvironment builds the run configuration. A .env file in the working
// directory is loaded first if one exists. The returned config is read-only
// for the rest of the run.
func FromEnvironment() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	c := &Config{
		GoogleMapsKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		RequestTimeout: 10 * time.Second,
	}
	if c.GoogleMapsKey == "" {
		return nil, ErrMissingAPIKey
	}
	return c, nil
}
