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

package power

import (
	"fmt"
	"net/http"
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/defaults"
	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/serializer"
	"github.com/gtnh/gtpower/pkg/server"
	"github.com/gtnh/gtpower/pkg/tier"
)

// Query is a request for a cost report.
type Query struct {
	EUPerTick     int64
	DurationTicks int64
	// MachineTier is the tier of the observing machine, if any.
	MachineTier *tier.Tier
	UseSeconds  bool
}

// MachineReport describes how a specific machine would run a recipe.
type MachineReport struct {
	Tier   tier.Tier `json:"tier" yaml:"tier"`
	Name   string    `json:"name" yaml:"name"`
	CanRun bool      `json:"canRun" yaml:"canRun"`
	// Overclocked is set when the model overclocks and the machine can run
	// the recipe.
	Overclocked *Description `json:"overclocked,omitempty" yaml:"overclocked,omitempty"`
}

// Report is the full cost breakdown of one recipe.
type Report struct {
	Description `json:",inline" yaml:",inline"`

	Lines   []string       `json:"lines" yaml:"lines"`
	Machine *MachineReport `json:"machine,omitempty" yaml:"machine,omitempty"`
}

// Report computes and describes q.
func (m *Model) Report(q Query) (*Report, error) {
	spec, err := m.Compute(q.EUPerTick, q.DurationTicks)
	if err != nil {
		return nil, err
	}

	d := m.Describe(spec, q.UseSeconds)
	rep := &Report{Description: d, Lines: d.Lines()}
	if q.MachineTier == nil {
		return rep, nil
	}

	mt := *q.MachineTier
	if !m.table.Contains(mt) {
		_, err := m.table.ThresholdFor(mt)
		return nil, err
	}
	rep.Machine = &MachineReport{
		Tier:   mt,
		Name:   m.TierString(mt),
		CanRun: CanHandle(spec, mt),
	}
	if rep.Machine.CanRun && m.overclock != nil {
		oc, err := m.Overclock(spec, mt)
		if err != nil {
			return nil, err
		}
		od := m.Describe(oc, q.UseSeconds)
		rep.Machine.Overclocked = &od
	}
	return rep, nil
}

// TiersResponse lists a tier table.
type TiersResponse struct {
	MaxTier tier.Tier   `json:"maxTier" yaml:"maxTier"`
	Tiers   []tier.Info `json:"tiers" yaml:"tiers"`
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, gterrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodGet},
		})
	return false
}

// HandleTiers serves the model's tier table.
func (m *Model) HandleTiers(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, TiersResponse{
		MaxTier: m.table.MaxTier(),
		Tiers:   m.table.Tiers(),
	})
}

// HandlePower serves a cost report for the query parameters eut, duration,
// machineTier, overclock (none, standard, perfect), unit (eu, steam) and
// seconds.
func (m *Model) HandlePower(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	model, q, err := m.parsePowerQuery(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid power query", nil)
		return
	}

	rep, err := model.Report(q)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compute power", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

func (m *Model) parsePowerQuery(r *http.Request) (*Model, Query, error) {
	params := r.URL.Query()
	var q Query
	var err error

	if q.EUPerTick, err = parseInt(params.Get("eut"), "eut"); err != nil {
		return nil, q, err
	}
	if q.DurationTicks, err = parseInt(params.Get("duration"), "duration"); err != nil {
		return nil, q, err
	}
	if s := params.Get("seconds"); s != "" {
		if q.UseSeconds, err = strconv.ParseBool(s); err != nil {
			return nil, q, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "invalid seconds parameter", err)
		}
	}
	if s := params.Get("machineTier"); s != "" {
		mt, perr := m.table.Parse(s)
		if perr != nil {
			return nil, q, perr
		}
		q.MachineTier = ptr.To(mt)
	}

	opts := make([]Option, 0, 2)
	if m.overclock != nil {
		opts = append(opts, WithOverclock(*m.overclock))
	}
	if s := params.Get("overclock"); s != "" {
		oc, on, oerr := ParseOverclocker(s)
		if oerr != nil {
			return nil, q, oerr
		}
		if on {
			opts = append(opts, WithOverclock(oc))
		} else {
			opts = append(opts, withoutOverclock())
		}
	}
	unit := m.unit
	if s := params.Get("unit"); s != "" {
		u, ok := ParseUnit(s)
		if !ok {
			return nil, q, gterrors.New(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("unknown unit %q (supported: eu, steam)", s))
		}
		unit = u
	}
	opts = append(opts, WithUnit(unit))

	return NewModel(m.table, opts...), q, nil
}

func withoutOverclock() Option {
	return func(m *Model) {
		m.overclock = nil
	}
}

// parseInt parses an optional integer parameter; empty means zero.
func parseInt(s, name string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s parameter", name), err, map[string]any{name: s})
	}
	return v, nil
}
