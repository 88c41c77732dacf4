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
	ociMetadataURI  = "http://169.254.169.254"
	ociMetadataPath = "/opc/v1/instance/metadata/"
)

// OCI detects Oracle Cloud Infrastructure hosts.
type OCI struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

type ociMetadata struct {
	OkeTM string `json:"oke-tm"`
}

func NewOCI(cfg *v1.Config) *OCI {
	return &OCI{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (o *OCI) Identifier() v1.ProviderId {
	return v1.OCI
}

func (o *OCI) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	o.logger.Debug("Checking Oracle Cloud Infrastructure")
	if o.checkVendorFile(constants.ChassisAssetTagFile) || o.checkMetadataServer(ctx, ociMetadataURI) {
		o.logger.Debug("Identified Oracle Cloud Infrastructure")
		select {
		case report <- v1.OCI:
		default:
		}
	}
}

func (o *OCI) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + ociMetadataPath
	o.logger.Debugf("Checking %s metadata using url: %s", v1.OCI, url)

	resp, err := o.client.Get(ctx, url, nil)
	if err != nil {
		o.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	var metadata ociMetadata
	if err = json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		o.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return strings.Contains(metadata.OkeTM, "oke")
}

func (o *OCI) checkVendorFile(file string) bool {
	o.logger.Debugf("Checking %s vendor file: %s", v1.OCI, file)

	fi, err := o.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := o.fs.ReadFile(file)
	if err != nil {
		o.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "OracleCloud")
}
