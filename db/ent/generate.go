// Generates the ent client for the question and ingest_run schemas into
// gen/ent. Run from the repository root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/examtools/questionbank/gen/ent",
			Schema:  "github.com/examtools/questionbank/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
