package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spectralviz/blackbody/pkg/spectrum"
)

func main() {
	var temp float64
	var asJSON bool
	flag.Float64Var(&temp, "temp", 5850, "Blackbody temperature in Kelvin")
	flag.BoolVar(&asJSON, "json", false, "Dump the full dataset as JSON instead of a summary")
	flag.Parse()

	computer, err := spectrum.NewComputer(spectrum.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building computer: %v\n", err)
		os.Exit(1)
	}

	ds, err := computer.ComputeDataset(temp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing dataset: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ds); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding dataset: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Blackbody spectrum at %.0f K\n", ds.TemperatureK)
	fmt.Printf("  Peak wavelength:  %.4f µm\n", ds.PeakMicrons)
	fmt.Printf("  Total radiance:   %.4e W·sr⁻¹·m⁻²\n", ds.Energy.Total)
	fmt.Printf("  Visible radiance: %.4e W·sr⁻¹·m⁻²\n", ds.Energy.Visible)
	fmt.Printf("  Visible fraction: %.1f%%\n", ds.Energy.Fraction*100)
	fmt.Printf("  Curve color:      %s\n", ds.CurveHex)
	fmt.Printf("  Samples:          %d\n", len(ds.Samples))
}
