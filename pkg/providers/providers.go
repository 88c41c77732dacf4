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

// Package providers implements one detection probe per supported cloud
// provider. Every probe checks a DMI vendor file first and falls back to the
// provider's link-local metadata service; any failure on either path means
// "did not confirm" and is never escalated.
package providers

import (
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

// NewRoster returns the full set of compiled-in providers, in stable order.
// The roster is built once per configuration and is read-only afterwards, so
// it can back any number of concurrent detections.
func NewRoster(cfg *v1.Config) v1.Roster {
	return v1.Roster{
		NewAkamai(cfg),
		NewAlibaba(cfg),
		NewAWS(cfg),
		NewAzure(cfg),
		NewDigitalOcean(cfg),
		NewGCP(cfg),
		NewOCI(cfg),
		NewOpenStack(cfg),
		NewVultr(cfg),
	}
}
