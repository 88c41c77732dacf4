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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdConfig "github.com/rancher-sandbox/cloud-detect/cmd/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	"github.com/rancher-sandbox/cloud-detect/pkg/detector"
	detectError "github.com/rancher-sandbox/cloud-detect/pkg/error"
)

// NewDetectCmd runs the detection race and prints the canonical name of the
// winning provider, "unknown" included. A run that cannot resolve before the
// deadline exits with a dedicated code so scripts can tell "no cloud" from
// "ran out of time".
func NewDetectCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:          "detect",
		Short:        "Detect the cloud provider hosting this machine",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := cmdConfig.ReadDetectSpec()
			if err != nil {
				return detectError.NewFromError(err, detectError.InvalidConfig)
			}
			cfg := cmdConfig.ReadConfigDetect(spec)

			id, ok := detector.New(cfg).DetectWithTimeout(spec.Timeout)
			if !ok {
				return detectError.New("detection did not resolve in time", detectError.DetectionTimeout)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Duration("timeout", constants.DefaultDetectionTimeout, "Overall detection deadline")
	_ = viper.BindPFlag("timeout", c.Flags().Lookup("timeout"))
	return c
}

// register the subcommand into rootCmd
var _ = NewDetectCmd(rootCmd)
