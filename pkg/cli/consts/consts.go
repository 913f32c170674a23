/* Copyright 2025 Gymsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package consts provides definitions of constants
package consts

var (
	// GymsyncDirName is the name of the directory containing gymsync files
	GymsyncDirName = "gymsync"
	// GymsyncDBFileName is a filename for the gymsync SQLite database
	GymsyncDBFileName = "gymsync.db"
	// ConfigFilename is the name of the config file
	ConfigFilename = "gymsyncrc"

	// SystemLastFetchTime is the watermark through which remote member data is
	// known to be reflected in the local cache, in epoch milliseconds
	SystemLastFetchTime = "last_fetch_time"
)

// DateLayout is the display format for subscription dates
const DateLayout = "02/01/2006"
