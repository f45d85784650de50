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

package header

import (
	"fmt"
	"time"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
)

// APIVersion is the schema version of gtpower documents.
const APIVersion = "gtpower.gtnh/v1"

// Kind is the type of a gtpower document.
type Kind string

const (
	KindRecipeList Kind = "RecipeList"
	KindTierTable  Kind = "TierTable"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeList, KindTierTable:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata entry.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header with the current APIVersion and the provided
// functional options applied.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies a gtpower document. It is embedded inline in file
// formats, so a document may omit it entirely.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains free-form key-value pairs about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the kind and current APIVersion and stamps Metadata with the
// creation timestamp and, when set, the tool version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Check validates a decoded header against the expected kind. Fields left
// empty are accepted.
func (h *Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("document kind is %q, expected %q", h.Kind, want),
			map[string]any{"kind": h.Kind.String(), "expected": want.String()})
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %q (supported: %s)", h.APIVersion, APIVersion),
			map[string]any{"apiVersion": h.APIVersion})
	}
	return nil
}
