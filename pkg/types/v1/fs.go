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

package v1

import "os"

// FS is the read-only filesystem surface probes use to inspect host vendor
// files. vfs.OSFS implements it and tests plug in a vfst test filesystem.
type FS interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(filename string) ([]byte, error)
}
