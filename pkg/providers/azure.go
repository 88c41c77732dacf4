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
	azureMetadataURI  = "http://169.254.169.254"
	azureMetadataPath = "/metadata/instance?api-version=2017-12-01"
)

// Azure detects Microsoft Azure hosts.
type Azure struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

type azureMetadata struct {
	Compute struct {
		VMId string `json:"vmId"`
	} `json:"compute"`
}

func NewAzure(cfg *v1.Config) *Azure {
	return &Azure{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (a *Azure) Identifier() v1.ProviderId {
	return v1.Azure
}

func (a *Azure) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	a.logger.Debug("Checking Microsoft Azure")
	if a.checkVendorFile(constants.SysVendorFile) || a.checkMetadataServer(ctx, azureMetadataURI) {
		a.logger.Debug("Identified Microsoft Azure")
		select {
		case report <- v1.Azure:
		default:
		}
	}
}

func (a *Azure) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + azureMetadataPath
	a.logger.Debugf("Checking %s metadata using url: %s", v1.Azure, url)

	resp, err := a.client.Get(ctx, url, map[string]string{"Metadata": "true"})
	if err != nil {
		a.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	var metadata azureMetadata
	if err = json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		a.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return metadata.Compute.VMId != ""
}

func (a *Azure) checkVendorFile(file string) bool {
	a.logger.Debugf("Checking %s vendor file: %s", v1.Azure, file)

	fi, err := a.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := a.fs.ReadFile(file)
	if err != nil {
		a.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "Microsoft Corporation")
}
