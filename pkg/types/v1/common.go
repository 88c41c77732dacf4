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

package v1

// ProviderId identifies a cloud service provider. The canonical textual form
// is the lowercase value itself, used for display, logging and test
// assertions.
type ProviderId string

const (
	// Unknown is the default value, also returned when no provider matched.
	Unknown ProviderId = "unknown"
	// Akamai Cloud (Linode).
	Akamai ProviderId = "akamai"
	// Alibaba Cloud.
	Alibaba ProviderId = "alibaba"
	// Amazon Web Services.
	AWS ProviderId = "aws"
	// Microsoft Azure.
	Azure ProviderId = "azure"
	// DigitalOcean.
	DigitalOcean ProviderId = "digitalocean"
	// Google Cloud Platform.
	GCP ProviderId = "gcp"
	// Oracle Cloud Infrastructure.
	OCI ProviderId = "oci"
	// OpenStack.
	OpenStack ProviderId = "openstack"
	// Vultr.
	Vultr ProviderId = "vultr"
)

func (p ProviderId) String() string {
	return string(p)
}
