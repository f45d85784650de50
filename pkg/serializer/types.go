// Copyright (c) 2026, The gtpower Authors.  All rights reserved.
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

// Package serializer renders and loads gtpower data in JSON, YAML and
// table form.
//
// Writers target stdout, a file, or any io.Writer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, tiers); err != nil {
//		return err
//	}
//
// Readers decode JSON and YAML. The table format is write-only:
//
//	cfg, err := serializer.FromFile[recipe.File]("recipes.yaml")
//
// HTTP handlers answer with RespondJSON, which buffers the encoding so a
// failed encode never produces a partial body.
package serializer

import "context"

// Serializer writes a value in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers that hold resources.
type Closer interface {
	Close() error
}
