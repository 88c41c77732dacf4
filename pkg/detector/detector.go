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

// Package detector runs every registered provider probe concurrently and
// resolves the race for the first positive report.
package detector

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rancher-sandbox/cloud-detect/pkg/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/providers"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

// Detector arbitrates the detection race over an immutable provider roster.
// A Detector is safe for concurrent use; each detection call builds its own
// transient race state.
type Detector struct {
	roster v1.Roster
	logger v1.Logger
}

// New returns a Detector over the full compiled-in roster.
func New(cfg *v1.Config) *Detector {
	return &Detector{roster: providers.NewRoster(cfg), logger: cfg.Logger}
}

// NewWithRoster returns a Detector over a custom roster. The roster must not
// be mutated afterwards.
func NewWithRoster(roster v1.Roster, logger v1.Logger) *Detector {
	return &Detector{roster: roster, logger: logger}
}

// Detect runs all probes concurrently and returns the identity of the first
// one that confirms, or Unknown once every probe has finished without a
// match. Cancelling ctx also yields Unknown. The call is unbounded except by
// ctx; use DetectWithTimeout for a wall-clock deadline.
func (d *Detector) Detect(ctx context.Context) v1.ProviderId {
	id, _ := d.race(ctx)
	return id
}

// DetectWithTimeout runs Detect under the given deadline. The boolean is
// false when the deadline elapsed before the race resolved, which is a
// distinct outcome from (Unknown, true) meaning "every probe finished and
// none matched".
func (d *Detector) DetectWithTimeout(timeout time.Duration) (v1.ProviderId, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	id, timedOut := d.race(ctx)
	if timedOut {
		return v1.Unknown, false
	}
	return id, true
}

// SupportedProviders returns the display name of every roster entry, in
// roster order.
func (d *Detector) SupportedProviders() []string {
	return d.roster.Names()
}

// race implements the fan-out race. Each probe runs in its own goroutine and
// writes at most once into a capacity-1 delivery channel. Completion without
// a winner is detected by an atomic countdown: whichever probe finishes last
// closes the done channel, so no supervisor goroutine and no channel close
// on the delivery side are needed.
func (d *Detector) race(ctx context.Context) (v1.ProviderId, bool) {
	report := make(chan v1.ProviderId, 1)
	done := make(chan struct{})

	var remaining atomic.Int32
	remaining.Store(int32(len(d.roster)))
	if len(d.roster) == 0 {
		close(done)
	}

	for _, p := range d.roster {
		go func(p v1.Provider) {
			p.Identify(ctx, report)
			if remaining.Add(-1) == 0 {
				close(done)
			}
		}(p)
	}

	select {
	case id := <-report:
		d.logger.Debugf("Received result from channel: %s", id)
		return id, false
	case <-done:
		// The last probe may confirm in the same instant it closes done; a
		// delivered result always beats the completion signal.
		select {
		case id := <-report:
			d.logger.Debugf("Received result from channel: %s", id)
			return id, false
		default:
			d.logger.Debug("All providers have finished identifying")
			return v1.Unknown, false
		}
	case <-ctx.Done():
		// A result that landed just as the deadline fired still wins.
		select {
		case id := <-report:
			d.logger.Debugf("Received result from channel: %s", id)
			return id, false
		default:
			d.logger.Debugf("Detection cancelled: %s", ctx.Err().Error())
			return v1.Unknown, true
		}
	}
}

// Detect is a convenience wrapper running a one-off detection with the
// default configuration.
func Detect(ctx context.Context) v1.ProviderId {
	return New(config.NewConfig()).Detect(ctx)
}

// DetectWithTimeout is a convenience wrapper running a one-off deadline-bound
// detection with the default configuration.
func DetectWithTimeout(timeout time.Duration) (v1.ProviderId, bool) {
	return New(config.NewConfig()).DetectWithTimeout(timeout)
}

// SupportedProviders returns the names of all compiled-in providers.
func SupportedProviders() []string {
	return New(config.NewConfig()).SupportedProviders()
}
