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

package mocks

import (
	"context"
	"time"

	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

// FakeProvider is a scriptable Provider implementation used to exercise the
// detection race without touching files or the network.
type FakeProvider struct {
	Id      v1.ProviderId
	Matches bool
	Delay   time.Duration
	// Sends is the number of report attempts per run, defaults to 1. Values
	// above 1 simulate a misbehaving probe reporting more than once.
	Sends int
}

func (f *FakeProvider) Identifier() v1.ProviderId {
	return f.Id
}

func (f *FakeProvider) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return
		}
	}
	if !f.Matches {
		return
	}
	sends := f.Sends
	if sends == 0 {
		sends = 1
	}
	for i := 0; i < sends; i++ {
		select {
		case report <- f.Id:
		default:
		}
	}
}
