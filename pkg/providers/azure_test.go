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

package providers_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/v4/vfst"

	"github.com/rancher-sandbox/cloud-detect/pkg/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/mocks"
	"github.com/rancher-sandbox/cloud-detect/pkg/providers"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

const azureMetadataURL = "http://169.254.169.254/metadata/instance?api-version=2017-12-01"

var _ = Describe("Azure", Label("providers", "azure"), func() {
	var client *mocks.FakeHTTPClient
	var cleanup func()

	newAzure := func(files map[string]interface{}) *providers.Azure {
		testFs, clean, err := vfst.NewTestFS(files)
		Expect(err).To(BeNil())
		cleanup = clean
		return providers.NewAzure(config.NewConfig(
			config.WithFs(testFs),
			config.WithLogger(v1.NewNullLogger()),
			config.WithClient(client),
		))
	}

	BeforeEach(func() {
		client = &mocks.FakeHTTPClient{}
	})
	AfterEach(func() {
		cleanup()
	})

	It("confirms from the DMI vendor file without touching the network", func() {
		azure := newAzure(map[string]interface{}{
			"/sys/class/dmi/id/sys_vendor": "Microsoft Corporation",
		})
		Expect(identify(azure)).To(Equal(v1.Azure))
		Expect(client.ClientCalls).To(BeEmpty())
	})

	It("confirms from the metadata service when the vendor file is absent", func() {
		client.AddResponse(azureMetadataURL, http.StatusOK, `{"compute": {"vmId": "vm-123abc"}}`)
		azure := newAzure(map[string]interface{}{})
		Expect(identify(azure)).To(Equal(v1.Azure))
		Expect(client.WasGetCalledWith(azureMetadataURL)).To(BeTrue())
	})

	It("does not confirm on an empty vmId", func() {
		client.AddResponse(azureMetadataURL, http.StatusOK, `{"compute": {"vmId": ""}}`)
		azure := newAzure(map[string]interface{}{})
		Expect(identify(azure)).To(Equal(v1.Unknown))
	})

	It("does not confirm on a malformed metadata payload", func() {
		client.AddResponse(azureMetadataURL, http.StatusOK, `not json at all`)
		azure := newAzure(map[string]interface{}{})
		Expect(identify(azure)).To(Equal(v1.Unknown))
	})

	It("does not confirm when the vendor file belongs to someone else and the network is down", func() {
		azure := newAzure(map[string]interface{}{
			"/sys/class/dmi/id/sys_vendor": "QEMU",
		})
		Expect(identify(azure)).To(Equal(v1.Unknown))
	})
})
