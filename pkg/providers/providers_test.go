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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/v4/vfst"

	"github.com/rancher-sandbox/cloud-detect/pkg/config"
	"github.com/rancher-sandbox/cloud-detect/pkg/mocks"
	"github.com/rancher-sandbox/cloud-detect/pkg/providers"
	v1 "github.com/rancher-sandbox/cloud-detect/pkg/types/v1"
)

var _ = Describe("Roster", Label("providers", "roster"), func() {
	var cfg *v1.Config
	var cleanup func()

	BeforeEach(func() {
		testFs, clean, err := vfst.NewTestFS(map[string]interface{}{})
		Expect(err).To(BeNil())
		cleanup = clean
		cfg = config.NewConfig(
			config.WithFs(testFs),
			config.WithLogger(v1.NewNullLogger()),
			config.WithClient(&mocks.FakeHTTPClient{}),
		)
	})
	AfterEach(func() {
		cleanup()
	})

	It("contains every compiled-in provider exactly once", func() {
		roster := providers.NewRoster(cfg)
		Expect(roster).To(HaveLen(9))

		seen := map[v1.ProviderId]bool{}
		for _, p := range roster {
			Expect(seen[p.Identifier()]).To(BeFalse(), "duplicate provider %s", p.Identifier())
			seen[p.Identifier()] = true
		}
	})

	It("uses canonical lowercase display names", func() {
		for _, name := range providers.NewRoster(cfg).Names() {
			Expect(name).To(Equal(strings.ToLower(name)))
		}
	})
})

var _ = Describe("Remaining providers", Label("providers"), func() {
	var client *mocks.FakeHTTPClient
	var cfg *v1.Config
	var cleanups []func()

	withFiles := func(files map[string]interface{}) {
		testFs, clean, err := vfst.NewTestFS(files)
		Expect(err).To(BeNil())
		cleanups = append(cleanups, clean)
		cfg = config.NewConfig(
			config.WithFs(testFs),
			config.WithLogger(v1.NewNullLogger()),
			config.WithClient(client),
		)
	}

	BeforeEach(func() {
		client = &mocks.FakeHTTPClient{}
		cleanups = nil
	})
	AfterEach(func() {
		for _, clean := range cleanups {
			clean()
		}
	})

	It("detects Alibaba through vendor file and metadata body", func() {
		withFiles(map[string]interface{}{
			"/sys/class/dmi/id/product_name": "Alibaba Cloud ECS",
		})
		Expect(identify(providers.NewAlibaba(cfg))).To(Equal(v1.Alibaba))

		withFiles(map[string]interface{}{})
		client.AddResponse(
			"http://100.100.100.200/latest/meta-data/latest/meta-data/instance/virtualization-solution",
			http.StatusOK, "ECS Virt")
		Expect(identify(providers.NewAlibaba(cfg))).To(Equal(v1.Alibaba))
	})

	It("detects DigitalOcean through a droplet id", func() {
		withFiles(map[string]interface{}{})
		client.AddResponse("http://169.254.169.254/metadata/v1.json",
			http.StatusOK, `{"droplet_id": 12345}`)
		Expect(identify(providers.NewDigitalOcean(cfg))).To(Equal(v1.DigitalOcean))

		client.AddResponse("http://169.254.169.254/metadata/v1.json",
			http.StatusOK, `{"droplet_id": 0}`)
		Expect(identify(providers.NewDigitalOcean(cfg))).To(Equal(v1.Unknown))
	})

	It("detects OCI through the chassis asset tag and oke-tm field", func() {
		withFiles(map[string]interface{}{
			"/sys/class/dmi/id/chassis_asset_tag": "OracleCloud.com",
		})
		Expect(identify(providers.NewOCI(cfg))).To(Equal(v1.OCI))

		withFiles(map[string]interface{}{})
		client.AddResponse("http://169.254.169.254/opc/v1/instance/metadata/",
			http.StatusOK, `{"oke-tm": "oke-abc"}`)
		Expect(identify(providers.NewOCI(cfg))).To(Equal(v1.OCI))
	})

	It("detects Vultr through an instance id", func() {
		withFiles(map[string]interface{}{
			"/sys/class/dmi/id/sys_vendor": "Vultr",
		})
		Expect(identify(providers.NewVultr(cfg))).To(Equal(v1.Vultr))

		withFiles(map[string]interface{}{})
		client.AddResponse("http://169.254.169.254/v1.json",
			http.StatusOK, `{"instanceid": "abc123"}`)
		Expect(identify(providers.NewVultr(cfg))).To(Equal(v1.Vultr))
	})

	It("detects Akamai through the instance metadata body", func() {
		withFiles(map[string]interface{}{})
		client.AddResponse("http://169.254.169.254/v1/instance",
			http.StatusOK, `{"host_uuid": "abc", "region": "akamai-iad"}`)
		Expect(identify(providers.NewAkamai(cfg))).To(Equal(v1.Akamai))

		client.AddResponse("http://169.254.169.254/v1/instance",
			http.StatusOK, `{"host_uuid": "abc"}`)
		Expect(identify(providers.NewAkamai(cfg))).To(Equal(v1.Unknown))
	})
})
