// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decompose

import "log/slog"

// DecomposerOptionFunc is a type that represents functions that modify the Decomposer config
type DecomposerOptionFunc func(*Decomposer)

// WithUnknownReceiverPolicy specifies how receivers with unknown typecodes are reported. The
// default is UnknownReceiverDrop
func WithUnknownReceiverPolicy(policy UnknownReceiverPolicy) DecomposerOptionFunc {
	return func(d *Decomposer) {
		d.unknownPolicy = policy
	}
}

// WithLogger specifies the logger for degraded receivers. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecomposerOptionFunc {
	return func(d *Decomposer) {
		d.logger = logger
	}
}
