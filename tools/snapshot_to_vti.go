// +build ignore

// snapshot_to_vti reads a runner.Snapshot JSON file (written by the
// sailfish driver at the end of a run) and writes a VTK ImageData
// (.vti) file with the Sigma field, for loading in ParaView/VisIt.
// Output-writing idiom (io.Ff into a bytes.Buffer, io.WriteFile,
// io.Sf for path formatting) is carried over from the teacher's own
// VTU exporter (tools/GenVtu.go in the original FEM tree), adapted
// here to a structured-points field dump instead of an unstructured
// FE mesh.
package main

import (
	"bytes"
	"encoding/json"
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

type snapshot struct {
	Solver string    `json:"solver"`
	Ni     int       `json:"ni"`
	Nj     int       `json:"nj"`
	Steps  int       `json:"steps"`
	Sigma  []float64 `json:"sigma"`
}

func main() {
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("usage: snapshot_to_vti <snapshot.json> [out.vti]")
	}
	fnamepath := flag.Arg(0)
	outpath := "snapshot.vti"
	if len(flag.Args()) > 1 {
		outpath = flag.Arg(1)
	}

	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read %q: %v", fnamepath, err)
	}
	var snap snapshot
	if err := json.Unmarshal(buf, &snap); err != nil {
		chk.Panic("cannot parse %q: %v", fnamepath, err)
	}

	nj := snap.Nj
	if nj == 0 {
		nj = 1 // srhd1d: a 1-wide strip
	}

	var body bytes.Buffer
	io.Ff(&body, "<?xml version=\"1.0\"?>\n")
	io.Ff(&body, "<VTKFile type=\"ImageData\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	io.Ff(&body, "<ImageData WholeExtent=\"0 %d 0 %d 0 0\" Origin=\"0 0 0\" Spacing=\"1 1 1\">\n", snap.Ni, nj)
	io.Ff(&body, "<Piece Extent=\"0 %d 0 %d 0 0\">\n", snap.Ni, nj)
	io.Ff(&body, "<PointData Scalars=\"sigma\">\n<DataArray type=\"Float64\" Name=\"sigma\" format=\"ascii\">\n")
	for _, v := range snap.Sigma {
		io.Ff(&body, "%.10e ", v)
	}
	io.Ff(&body, "\n</DataArray>\n</PointData>\n</Piece>\n</ImageData>\n</VTKFile>\n")

	io.WriteFileV(outpath, &body)
	io.Pf("> wrote %s (%s, %d steps, %d cells)\n", outpath, snap.Solver, snap.Steps, len(snap.Sigma))
}
