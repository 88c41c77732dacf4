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

package providers

import (
	"context"
	"io"
	"strings"

	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

const (
	akamaiMetadataURI  = "http://169.254.169.254"
	akamaiMetadataPath = "/v1/instance"
)

// Akamai detects Akamai Cloud (Linode) hosts.
type Akamai struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

func NewAkamai(cfg *v1.Config) *Akamai {
	return &Akamai{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (a *Akamai) Identifier() v1.ProviderId {
	return v1.Akamai
}

func (a *Akamai) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	a.logger.Debug("Checking Akamai Cloud")
	if a.checkVendorFile(constants.SysVendorFile) || a.checkMetadataServer(ctx, akamaiMetadataURI) {
		a.logger.Debug("Identified Akamai Cloud")
		select {
		case report <- v1.Akamai:
		default:
		}
	}
}

func (a *Akamai) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + akamaiMetadataPath
	a.logger.Debugf("Checking %s metadata using url: %s", v1.Akamai, url)

	resp, err := a.client.Get(ctx, url, nil)
	if err != nil {
		a.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		a.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return strings.Contains(strings.ToLower(string(body)), "akamai")
}

func (a *Akamai) checkVendorFile(file string) bool {
	a.logger.Debugf("Checking %s vendor file: %s", v1.Akamai, file)

	fi, err := a.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := a.fs.ReadFile(file)
	if err != nil {
		a.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "Akamai")
}
