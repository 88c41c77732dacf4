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
	awsMetadataURI  = "http://169.254.169.254"
	awsMetadataPath = "/latest/dynamic/instance-identity/document"
)

// AWS detects Amazon Web Services hosts.
type AWS struct {
	fs     v1.FS
	client v1.HTTPClient
	logger v1.Logger
}

type awsIdentityDocument struct {
	ImageId    string `json:"imageId"`
	InstanceId string `json:"instanceId"`
}

func NewAWS(cfg *v1.Config) *AWS {
	return &AWS{fs: cfg.Fs, client: cfg.Client, logger: cfg.Logger}
}

func (a *AWS) Identifier() v1.ProviderId {
	return v1.AWS
}

func (a *AWS) Identify(ctx context.Context, report chan<- v1.ProviderId) {
	a.logger.Debug("Checking Amazon Web Services")
	if a.checkVendorFile(constants.ProductVersionFile) || a.checkMetadataServer(ctx, awsMetadataURI) {
		a.logger.Debug("Identified Amazon Web Services")
		select {
		case report <- v1.AWS:
		default:
		}
	}
}

func (a *AWS) checkMetadataServer(ctx context.Context, uri string) bool {
	url := uri + awsMetadataPath
	a.logger.Debugf("Checking %s metadata using url: %s", v1.AWS, url)

	resp, err := a.client.Get(ctx, url, nil)
	if err != nil {
		a.logger.Debugf("Error making request: %s", err.Error())
		return false
	}
	defer resp.Body.Close()

	var doc awsIdentityDocument
	if err = json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		a.logger.Debugf("Error reading response: %s", err.Error())
		return false
	}
	return strings.HasPrefix(doc.ImageId, "ami-") && strings.HasPrefix(doc.InstanceId, "i-")
}

func (a *AWS) checkVendorFile(file string) bool {
	a.logger.Debugf("Checking %s vendor file: %s", v1.AWS, file)

	fi, err := a.fs.Stat(file)
	if err != nil || fi.IsDir() {
		return false
	}
	content, err := a.fs.ReadFile(file)
	if err != nil {
		a.logger.Debugf("Error reading file: %s", err.Error())
		return false
	}
	return strings.Contains(string(content), "amazon")
}
