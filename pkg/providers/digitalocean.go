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
	"encoding/json"
	"strings"

	"github.com/rancher-sandbox/cloud-detect/pkg/constants"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

const (
	digitalOceanMetadataURI  = "http://169.254.169.254"
	digitalOceanMetadataPath = "/metadata/v1.json"
)

// DigitalOcean detects DigitalOcean droplets.
type DigitalOcean struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

type digitalOceanMetadata struct {
	DropletId int `json:"droplet_id"`
}

func NewDigitalOcean(cfg *v1.Config) *DigitalOcean {
	return &DigitalOcean{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (d *DigitalOcean) Identifier() v1.ProviderId {
	return v1.DigitalOcean
}

func (d *DigitalOcean) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	d.logger.Debug("Checking DigitalOcean")
	if d.checkVendorFile(constants.SysVendorFile) || d.checkMetadataServer(ctx, digitalOceanMetadataURI) {
		d.logger.Debug("Identified DigitalOcean")
		select {
		case report <- v1.DigitalOcean:
		default:
		}
	}
}

func (d *DigitalOcean) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + digitalOceanMetadataPath
	d.logger.Debugf("Checking %s metadata using url: %s", v1.DigitalOcean, url)

	resp, err := d.client.Get(ctx, url, nil)
	if err != nil {
		d.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	var metadata digitalOceanMetadata
	if err = json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		d.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return metadata.DropletId > 0
}

func (d *DigitalOcean) checkVendorFile(file string) bool {
	d.logger.Debugf("Checking %s vendor file: %s", v1.DigitalOcean, file)

	fi, err := d.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := d.fs.ReadFile(file)
	if err != nil {
		d.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "DigitalOcean")
}
