// Command ecocycle is the sustainability calculator CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "audit":
		cmdAudit(os.Args[2:])
	case "fleet":
		cmdFleet(os.Args[2:])
	case "roi":
		cmdROI(os.Args[2:])
	case "strategy":
		cmdStrategy(os.Args[2:])
	case "cloud":
		cmdCloud(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  ecocycle audit --device \"Laptop (Standard)\" --age 4 --persona \"Admin Normal (HR/Finance)\" --country FR")
	fmt.Println("  ecocycle fleet --csv fleet.csv --goal balanced --out results.csv")
	fmt.Println("  ecocycle fleet --demo 200 --seed 42")
	fmt.Println("  ecocycle roi --equipment Laptop --mfg-co2 250 --salary 50000")
	fmt.Println("  ecocycle roi --inventory inventory.csv --factors factors.csv")
	fmt.Println("  ecocycle strategy --fleet-size 5000 --target 0.3")
	fmt.Println("  ecocycle cloud --provider AWS --gb 50000 --growth 0.25 --target 0.3 --years 5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - audit compares KEEP / NEW / REFURBISHED for one device")
	fmt.Println("  - fleet analyzes a device inventory CSV (Device_Model, Age_Years, Persona, Country, Maison)")
	fmt.Println("  - unknown devices, personas and countries fall back to documented defaults")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
