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
	alibabaMetadataURI  = "http://100.100.100.200"
	alibabaMetadataPath = "/latest/meta-data/latest/meta-data/instance/virtualization-solution"
)

// Alibaba detects Alibaba Cloud hosts.
type Alibaba struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

func NewAlibaba(cfg *v1.Config) *Alibaba {
	return &Alibaba{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (a *Alibaba) Identifier() v1.ProviderId {
	return v1.Alibaba
}

func (a *Alibaba) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	a.logger.Debug("Checking Alibaba Cloud")
	if a.checkVendorFile(constants.ProductNameFile) || a.checkMetadataServer(ctx, alibabaMetadataURI) {
		a.logger.Debug("Identified Alibaba Cloud")
		select {
		case report <- v1.Alibaba:
		default:
		}
	}
}

func (a *Alibaba) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + alibabaMetadataPath
	a.logger.Debugf("Checking %s metadata using url: %s", v1.Alibaba, url)

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
	return strings.Contains(string(body), "ECS Virt")
}

func (a *Alibaba) checkVendorFile(file string) bool {
	a.logger.Debugf("Checking %s vendor file: %s", v1.Alibaba, file)

	fi, err := a.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := a.fs.ReadFile(file)
	if err != nil {
		a.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "Alibaba Cloud ECS")
}
