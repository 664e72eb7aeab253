package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the repository root: go run db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/takuya-okamoto/zumenkan/gen/ent",
			Schema:  "github.com/takuya-okamoto/zumenkan/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
