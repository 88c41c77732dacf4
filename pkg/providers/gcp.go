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
	"net/http"
	"strings"

	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

const (
	gcpMetadataURI  = "http://metadata.google.internal"
	gcpMetadataPath = "/computeMetadata/v1/instance/tags"
)

// GCP detects Google Cloud Platform hosts.
type GCP struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

func NewGCP(cfg *v1.Config) *GCP {
	return &GCP{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (g *GCP) Identifier() v1.ProviderId {
	return v1.GCP
}

func (g *GCP) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	g.logger.Debug("Checking Google Cloud Platform")
	if g.checkVendorFile(constants.ProductNameFile) || g.checkMetadataServer(ctx, gcpMetadataURI) {
		g.logger.Debug("Identified Google Cloud Platform")
		select {
		case report <- v1.GCP:
		default:
		}
	}
}

func (g *GCP) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + gcpMetadataPath
	g.logger.Debugf("Checking %s metadata using url: %s", v1.GCP, url)

	resp, err := g.client.Get(ctx, url, map[string]string{"Metadata-Flavor": "Google"})
	if err != nil {
		g.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

func (g *GCP) checkVendorFile(file string) bool {
	g.logger.Debugf("Checking %s vendor file: %s", v1.GCP, file)

	fi, err := g.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := g.fs.ReadFile(file)
	if err != nil {
		g.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "Google")
}
