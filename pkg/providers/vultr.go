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
	vultrMetadataURI  = "http://169.254.169.254"
	vultrMetadataPath = "/v1.json"
)

// Vultr detects Vultr hosts.
type Vultr struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

type vultrMetadata struct {
	InstanceId string `json:"instanceid"`
}

func NewVultr(cfg *v1.Config) *Vultr {
	return &Vultr{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (v *Vultr) Identifier() v1.ProviderId {
	return v1.Vultr
}

func (v *Vultr) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	v.logger.Debug("Checking Vultr")
	if v.checkVendorFile(constants.SysVendorFile) || v.checkMetadataServer(ctx, vultrMetadataURI) {
		v.logger.Debug("Identified Vultr")
		select {
		case report <- v1.Vultr:
		default:
		}
	}
}

func (v *Vultr) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + vultrMetadataPath
	v.logger.Debugf("Checking %s metadata using url: %s", v1.Vultr, url)

	resp, err := v.client.Get(ctx, url, nil)
	if err != nil {
		v.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	var metadata vultrMetadata
	if err = json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		v.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return metadata.InstanceId != ""
}

func (v *Vultr) checkVendorFile(file string) bool {
	v.logger.Debugf("Checking %s vendor file: %s", v1.Vultr, file)

	fi, err := v.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := v.fs.ReadFile(file)
	if err != nil {
		v.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "Vultr")
}
