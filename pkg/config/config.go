/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"time"

	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	"github.com/rancher-sandbox/cloud-detect/pkg/http"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

type GenericOptions func(c *v1.Config) error

func WithFs(fs v1.FS) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Fs = fs
		return nil
	}
}

func WithLogger(logger v1.Logger) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Logger = logger
		return nil
	}
}

func WithClient(client v1.HTTPClient) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Client = client
		return nil
	}
}

func WithTimeout(timeout time.Duration) func(c *v1.Config) error {
	return func(c *v1.Config) error {
		c.Timeout = timeout
		return nil
	}
}

// NewConfig returns a Config with sane defaults for any collaborator not set
// through the given options.
func NewConfig(opts ...GenericOptions) *v1.Config {
	log := v1.NewLogger()

	c := &v1.Config{
		Fs:      vfs.OSFS,
		Logger:  log,
		Timeout: constants.DefaultDetectionTimeout,
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	if c.Client == nil {
		c.Client = http.NewClient()
	}

	return c
}
