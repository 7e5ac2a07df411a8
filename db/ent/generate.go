package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates the Ent client into gen/ent from the schemas in db/ent/schema.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/qforge/exambank/gen/ent",
			Schema:  "github.com/qforge/exambank/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatalf("ent codegen: %v", err)
	}
}
