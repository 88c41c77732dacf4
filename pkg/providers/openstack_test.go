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

const openStackMetadataURL = "http://169.254.169.254/openstack/latest/meta_data.json"

var _ = Describe("OpenStack", Label("providers", "openstack"), func() {
	var client *mocks.FakeHTTPClient
	var cleanup func()

	newOpenStack := func(files map[string]interface{}) *providers.OpenStack {
		testFs, clean, err := vfst.NewTestFS(files)
		Expect(err).To(BeNil())
		cleanup = clean
		return providers.NewOpenStack(config.NewConfig(
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

	It("confirms from the Nova product name", func() {
		openstack := newOpenStack(map[string]interface{}{
			"/sys/class/dmi/id/product_name": "OpenStack Nova",
		})
		Expect(identify(openstack)).To(Equal(v1.OpenStack))
	})

	It("confirms from the chassis asset tag", func() {
		openstack := newOpenStack(map[string]interface{}{
			"/sys/class/dmi/id/chassis_asset_tag": "OpenStack Fog",
		})
		Expect(identify(openstack)).To(Equal(v1.OpenStack))
	})

	It("confirms from a reachable metadata service", func() {
		client.AddResponse(openStackMetadataURL, http.StatusOK, `{"uuid": "abc"}`)
		openstack := newOpenStack(map[string]interface{}{})
		Expect(identify(openstack)).To(Equal(v1.OpenStack))
	})

	It("does not confirm when every signal is missing", func() {
		client.AddResponse(openStackMetadataURL, http.StatusNotFound, "")
		openstack := newOpenStack(map[string]interface{}{})
		Expect(identify(openstack)).To(Equal(v1.Unknown))
	})
})
