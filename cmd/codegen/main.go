package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/celljam/celljam/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const outKey = "out"

// kinds is the table of typed wrappers emitted into cells/typed.go.
var kinds = []templates.CellKind{
	{Name: "Int", Type: "int", Integer: true},
	{Name: "Int64", Type: "int64", Integer: true},
	{Name: "Float32", Type: "float32", Float: true},
	{Name: "Float64", Type: "float64", Float: true},
	{Name: "Bool", Type: "bool", Bool: true},
	{Name: "Rune", Type: "rune"},
	{Name: "String", Type: "string", Text: true},
}

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed cell wrappers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Path of the generated file",
				Value: "cells/typed.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed cells started")
	defer func() {
		log.Printf("Codegen for typed cells finished in %v", time.Since(start))
	}()

	out := cmd.String(outKey)
	log.Printf("Emitting %d kinds to %s", len(kinds), out)

	contents := templates.TypedCellsGen(kinds)
	return os.WriteFile(out, []byte(contents), 0644)
}
