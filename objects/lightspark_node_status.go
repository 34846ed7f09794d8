// Copyright 2022-2025 The Lightspark SDK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objects

// LightsparkNodeStatus is the lifecycle state of a node managed by Lightspark.
type LightsparkNodeStatus string

const (
	LightsparkNodeStatusCreated        LightsparkNodeStatus = "CREATED"
	LightsparkNodeStatusDeployed       LightsparkNodeStatus = "DEPLOYED"
	LightsparkNodeStatusStarted        LightsparkNodeStatus = "STARTED"
	LightsparkNodeStatusSyncing        LightsparkNodeStatus = "SYNCING"
	LightsparkNodeStatusReady          LightsparkNodeStatus = "READY"
	LightsparkNodeStatusStopped        LightsparkNodeStatus = "STOPPED"
	LightsparkNodeStatusTerminated     LightsparkNodeStatus = "TERMINATED"
	LightsparkNodeStatusTerminating    LightsparkNodeStatus = "TERMINATING"
	LightsparkNodeStatusWalletLocked   LightsparkNodeStatus = "WALLET_LOCKED"
	LightsparkNodeStatusFailedToDeploy LightsparkNodeStatus = "FAILED_TO_DEPLOY"
)

// Known reports whether s is one of the values above. Values added to the
// API after this SDK was built decode unchanged and report false.
func (s LightsparkNodeStatus) Known() bool {
	switch s {
	case LightsparkNodeStatusCreated,
		LightsparkNodeStatusDeployed,
		LightsparkNodeStatusStarted,
		LightsparkNodeStatusSyncing,
		LightsparkNodeStatusReady,
		LightsparkNodeStatusStopped,
		LightsparkNodeStatusTerminated,
		LightsparkNodeStatusTerminating,
		LightsparkNodeStatusWalletLocked,
		LightsparkNodeStatusFailedToDeploy:
		return true
	}
	return false
}

func (s LightsparkNodeStatus) String() string {
	return string(s)
}
