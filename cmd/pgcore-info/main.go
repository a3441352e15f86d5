package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/powergridmodel/pgcore-go/pkg/pgcore"
)

func main() {
	libPath := flag.String("lib", "", "path to the engine shared library (default: discovery)")
	flag.Parse()

	log.Printf("pgcore-go version: %s", pgcore.WrapperVersion())
	log.Printf("engine library name: %s", pgcore.EngineLibraryName())

	core, err := pgcore.New(pgcore.Config{LibraryPath: *libPath})
	if err != nil {
		if errors.Is(err, pgcore.ErrLoad) || errors.Is(err, pgcore.ErrUnsupportedPlatform) {
			fmt.Printf("engine unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening session: %v", err)
	}
	defer func() {
		if cerr := core.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	little, err := core.IsLittleEndian()
	if err != nil {
		log.Fatalf("endianness query: %v", err)
	}
	fmt.Printf("engine little-endian: %v\n", little)

	schema, err := core.Schema()
	if err != nil {
		log.Fatalf("schema query: %v", err)
	}
	for _, ds := range schema {
		fmt.Printf("dataset %s\n", ds.Name)
		for _, comp := range ds.Components {
			fmt.Printf("  component %s (size=%d align=%d)\n", comp.Name, comp.Size, comp.Alignment)
			for _, attr := range comp.Attributes {
				fmt.Printf("    %-24s %-10s offset=%d\n", attr.Name, attr.CType, attr.Offset)
			}
		}
	}
}
