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

// Package header provides the document header shared by gtpower file formats.
//
// Recipe files and tier table files may start with a header identifying what
// they contain:
//
//	kind: RecipeList
//	apiVersion: gtpower.gtnh/v1
//	metadata:
//	  source: purified-water
//	recipes:
//	  - ...
//
// The header is optional. When present, loaders reject a document of the
// wrong kind or an unsupported apiVersion with an INVALID_REQUEST error.
package header
