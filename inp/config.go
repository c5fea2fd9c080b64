// package inp implements the run configuration read from a JSON input
// file: which solver to run, its domain, EOS, point masses, buffer
// zone and stepping parameters (spec §6, §8). This mirrors the
// teacher's own `inp` package in spirit -- a JSON-tagged Data struct
// loaded with encoding/json from a named file -- but carries a much
// smaller, solver-agnostic field set since there are no stages,
// materials or boundary conditions here.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solver discriminates which of the four core variants a run file
// selects.
type Solver string

const (
	Iso2D      Solver = "iso2d"
	Euler2D    Solver = "euler2d"
	Srhd1D     Solver = "srhd1d"
	CbDisoDG2D Solver = "cbdisodg2d"
)

// EOSData is the JSON-level description of an eos.EOS (spec §4.2).
type EOSData struct {
	Kind  string  `json:"kind"`  // "isothermal", "locally_isothermal", "gamma_law"
	Cs2   float64 `json:"cs2"`   // isothermal
	Mach2 float64 `json:"mach2"` // locally isothermal
	Gamma float64 `json:"gamma"` // gamma law
}

// MassData is the JSON-level description of one gravity.PointMass.
type MassData struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Vx           float64 `json:"vx"`
	Vy           float64 `json:"vy"`
	Mass         float64 `json:"mass"`
	SofteningLen float64 `json:"softening_length"`
	SinkRate     float64 `json:"sink_rate"`
	SinkRadius   float64 `json:"sink_radius"`
	Model        string  `json:"sink_model"` // "inactive", "acceleration_free", "torque_free", "force_free"
}

// BufferData is the JSON-level description of a buffer.Buffer.
type BufferData struct {
	Kind            string  `json:"kind"` // "none", "keplerian"
	SurfaceDensity  float64 `json:"surface_density"`
	SurfacePressure float64 `json:"surface_pressure"`
	CentralMass     float64 `json:"central_mass"`
	DrivingRate     float64 `json:"driving_rate"`
	OuterRadius     float64 `json:"outer_radius"`
	OnsetWidth      float64 `json:"onset_width"`
	Ramp            string  `json:"ramp"` // "linear", "legacy_max_r1"
}

// Data is the top-level run configuration decoded from a JSON input
// file (spec §8 External interface / driver boundary).
type Data struct {
	Desc   string     `json:"desc"`
	Solver Solver     `json:"solver"`
	Ni     int        `json:"ni"`
	Nj     int        `json:"nj"` // ignored by srhd1d
	Dx     float64    `json:"dx"`
	Dy     float64    `json:"dy"` // ignored by srhd1d
	Steps  int        `json:"steps"`
	Dt     float64    `json:"dt"`
	Theta  float64    `json:"theta_plm"`
	Mode   string     `json:"exec_mode"` // "serial", "thread_parallel", "accelerator"
	EOS    EOSData    `json:"eos"`
	Masses []MassData `json:"masses"`
	Buffer BufferData `json:"buffer"`
	DirOut string     `json:"dirout"`
}

// ReadFile loads and decodes a run configuration from fnamepath,
// mirroring the teacher's own io.ReadFile + json.Unmarshal idiom
// (inp/sim.go) rather than a bespoke parser.
func ReadFile(fnamepath string) (dat *Data, err error) {
	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("inp: cannot read run file %q: %v", fnamepath, err)
	}
	dat = new(Data)
	if err = json.Unmarshal(buf, dat); err != nil {
		return nil, chk.Err("inp: cannot parse run file %q: %v", fnamepath, err)
	}
	return dat, nil
}
