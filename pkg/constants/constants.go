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

package constants

import "time"

const (
	// DefaultDetectionTimeout bounds a whole detection run unless the caller
	// picks a different deadline.
	DefaultDetectionTimeout = 5 * time.Second
	// MetadataRequestTimeout bounds each probe's metadata request. It must
	// stay at or below the overall detection deadline so an abandoned probe
	// cannot outlive the run for long.
	MetadataRequestTimeout = 5 * time.Second

	// DMI identity files exposed by the kernel under sysfs.
	SysVendorFile       = "/sys/class/dmi/id/sys_vendor"
	ProductNameFile     = "/sys/class/dmi/id/product_name"
	ProductVersionFile  = "/sys/class/dmi/id/product_version"
	ChassisAssetTagFile = "/sys/class/dmi/id/chassis_asset_tag"
)
