package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/sailfish/inp"
	"github.com/cpmech/sailfish/runner"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nsailfish -- compressible hydrodynamics core\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("please provide a run file. Ex.: disk.run.json")
	}
	fnamepath := flag.Arg(0)
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".run.json"
	}

	dat, err := inp.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if dat.DirOut == "" {
		dat.DirOut = "/tmp/sailfish"
	}

	io.Pf("> run file read: %q (solver=%s)\n", fnamepath, dat.Solver)
	if err := runner.Run(dat); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("> done: snapshot written to %s/snapshot.json\n", dat.DirOut)
}
