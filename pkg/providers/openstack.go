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
	openStackMetadataURI  = "http://169.254.169.254"
	openStackMetadataPath = "/openstack/latest/meta_data.json"
)

// OpenStack detects OpenStack Nova instances. Nova exposes its identity
// through two different DMI files depending on the hypervisor, so both are
// checked before falling back to the metadata service.
type OpenStack struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

func NewOpenStack(cfg *v1.Config) *OpenStack {
	return &OpenStack{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (o *OpenStack) Identifier() v1.ProviderId {
	return v1.OpenStack
}

func (o *OpenStack) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	o.logger.Debug("Checking OpenStack")
	if o.checkVendorFile(constants.ProductNameFile, "OpenStack Nova") ||
		o.checkVendorFile(constants.ChassisAssetTagFile, "OpenStack Fog") ||
		o.checkMetadataServer(ctx, openStackMetadataURI) {
		o.logger.Debug("Identified OpenStack")
		select {
		case report <- v1.OpenStack:
		default:
		}
	}
}

func (o *OpenStack) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + openStackMetadataPath
	o.logger.Debugf("Checking %s metadata using url: %s", v1.OpenStack, url)

	resp, err := o.client.Get(ctx, url, nil)
	if err != nil {
		o.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

func (o *OpenStack) checkVendorFile(file string, signature string) bool {
	o.logger.Debugf("Checking %s vendor file: %s", v1.OpenStack, file)

	fi, err := o.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := o.fs.ReadFile(file)
	if err != nil {
		o.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), signature)
}
