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

	"github.com/rancher-sandbox/cloud-detect/pkg/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/detector"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

// NewProvidersCmd lists the providers compiled into this build, one
// canonical name per line.
func NewProvidersCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "providers",
		Short: "List the providers this build can detect",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := config.NewConfig(config.WithLogger(v1.NewNullLogger()))
			for _, name := range detector.New(cfg).SupportedProviders() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewProvidersCmd(rootCmd)
