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

import "context"

// Provider is a single cloud provider detection strategy.
//
// Identify sends the provider's own identifier on report if and only if it
// positively confirms the provider. Any failure along the way (missing
// vendor file, unreachable metadata service, malformed payload) is folded
// into "did not confirm": Identify returns normally and sends nothing.
// Implementations must not block on the report channel; a report that cannot
// be delivered because the race is already decided is dropped.
type Provider interface {
	Identifier() ProviderId
	Identify(ctx context.Context, report chan<- ProviderId)
}

// Roster is the ordered collection of providers compiled into the detector.
// It is built once and treated as read-only afterwards, so it can be shared
// across concurrent detections. Entries carry unique identifiers.
type Roster []Provider

// Names returns the canonical display name of every roster entry, in roster
// order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, p := range r {
		names = append(names, p.Identifier().String())
	}
	return names
}
