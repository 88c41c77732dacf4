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
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/rancher-sandbox/cloud-detect/pkg/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

// DetectSpec is the CLI-facing configuration, populated from flags and
// CLOUD_DETECT_* environment variables through viper.
type DetectSpec struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`
	Quiet   bool          `mapstructure:"quiet"`
}

// ReadDetectSpec materializes the DetectSpec from whatever viper currently
// holds (bound flags, env).
func ReadDetectSpec() (*DetectSpec, error) {
	spec := &DetectSpec{Timeout: constants.DefaultDetectionTimeout}

	viper.SetEnvPrefix("CLOUD_DETECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.Unmarshal(spec, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// ReadConfigDetect builds the runtime configuration for a detection run out
// of the given spec.
func ReadConfigDetect(spec *DetectSpec) *v1.Config {
	cfg := config.NewConfig(config.WithTimeout(spec.Timeout))

	if spec.Debug {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so flag driven and default output format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if spec.Quiet {
		cfg.Logger.SetOutput(io.Discard)
	} else {
		// logs go to stderr so the detected provider stays alone on stdout
		cfg.Logger.SetOutput(os.Stderr)
	}

	return cfg
}
