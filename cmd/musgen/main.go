package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"

	"github.com/altitut/FundingMatch-sub001/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/altitut/FundingMatch-sub001/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Opportunity](),
		structops.WithField(), // Id
		structops.WithField(), // Title
		structops.WithField(), // Description
		structops.WithField(), // Agency
		structops.WithField(), // Program
		structops.WithField(), // ProgramID
		structops.WithField(), // TopicNumber
		structops.WithField(), // Phase
		structops.WithField(), // AwardType
		structops.WithField(), // Keywords
		structops.WithField(), // URL
		structops.WithField(), // SolicitationURL
		structops.WithField(), // Status
		structops.WithField(), // PostedDate
		structops.WithField(), // OpenDate
		structops.WithField(), // CloseDate
		structops.WithField(), // AcceptsAnytime
		structops.WithField(), // Vector
		structops.WithField(opts),
		structops.WithField(opts),
		structops.WithField()) // Metadata
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.ResearcherProfile](),
		structops.WithField(), // Id
		structops.WithField(), // Name
		structops.WithField(), // Summary
		structops.WithField(), // ResearchInterests
		structops.WithField(), // Education
		structops.WithField(), // Awards
		structops.WithField(), // Experience
		structops.WithField(), // Publications
		structops.WithField(), // Skills
		structops.WithField(), // CombinedText
		structops.WithField(), // Vector
		structops.WithField(opts),
		structops.WithField(opts))
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.IngestCheckpoint](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(opts),
		structops.WithField(opts))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
