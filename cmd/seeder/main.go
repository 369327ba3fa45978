// Seeder populates a local database with sample funding opportunities and a
// sample researcher profile. It uses the mock AI provider, so it runs without
// an API key; the vectors are deterministic stand-ins, not real embeddings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	fundingmatch "github.com/altitut/FundingMatch-sub001"
	"github.com/altitut/FundingMatch-sub001/ai/mock"
	"github.com/altitut/FundingMatch-sub001/profile"
)

var sampleCSV = `Title,Description,Agency,Program,Deadline
Photonic Integrated Circuits for Sensing,Development of chip-scale photonic sensors for environmental and biomedical monitoring.,NSF,ECCS,2099-06-30
Machine Learning for Materials Discovery,Data-driven approaches to accelerate discovery of functional materials.,DOE,BES,2099-03-15
Quantum Networking Testbeds,Deployment of metropolitan-scale quantum communication testbeds.,NSF,OAC,2099-09-01
Autonomous Systems for Agriculture,Robotic platforms for precision agriculture and crop monitoring.,USDA,NIFA,2099-05-20
Secure Edge Computing Architectures,Hardware and software co-design for trustworthy edge computing.,DARPA,I2O,2099-11-30
Bioinspired Soft Robotics,Soft actuators and control strategies inspired by biological systems.,NSF,CMMI,2099-04-10
Grid-Scale Energy Storage,Long-duration storage technologies for renewable integration.,DOE,OE,2099-07-25
Wearable Health Monitoring,Low-power wearable sensors for continuous physiological monitoring.,NIH,NIBIB,2099-08-14
Resilient Communication Networks,Self-healing network protocols for disaster response.,NSF,CNS,2099-10-05
Additive Manufacturing of Alloys,Process control for metal additive manufacturing at production scale.,ONR,332,2099-02-28
`

var samplePerson = `{
  "person": {
    "name": "Dr. Sample Researcher",
    "summary": "Researcher working on photonic sensing and machine learning for scientific discovery.",
    "biographical_information": {
      "research_interests": ["photonics", "machine learning", "sensing", "materials"],
      "education": ["PhD in Electrical Engineering, Example University, 2015"],
      "awards": ["Early Career Award, 2019"]
    },
    "links": []
  }
}
`

var (
	dbPath = flag.String("db", "./fundingmatch_db", "database directory")
	srcDir = flag.String("src", "", "directory of CSV files to ingest instead of the built-in sample")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// writeSampleDir materializes the built-in sample CSV into a temp directory
// so the full ingestion pipeline, including the file move, is exercised.
func writeSampleDir() (string, error) {
	dir, err := os.MkdirTemp("", "fundingmatch-seed")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "sample_opportunities.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		return "", err
	}
	return dir, nil
}

func main() {
	ctx := context.Background()

	db, err := fundingmatch.NewDatabase(ctx, *dbPath,
		fundingmatch.WithAIProvider(mock.NewMockProvider()))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	dir := *srcDir
	if dir == "" {
		dir, err = writeSampleDir()
		if err != nil {
			panic(err)
		}
		defer os.RemoveAll(dir)
	}

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	summary, err := pipeline.ProcessDirectory(ctx, dir)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded opportunities",
		"files", len(summary.ProcessedFiles),
		"new", summary.NewOpportunities,
		"duplicates", summary.DuplicateSkipped)

	person, err := profile.ParsePerson(strings.NewReader(samplePerson))
	if err != nil {
		panic(err)
	}
	researcher, err := profile.Build(person, profile.Extras{})
	if err != nil {
		panic(err)
	}
	vector, err := db.AIProvider().Embedder().EmbedText(ctx, researcher.CombinedText)
	if err != nil {
		panic(err)
	}
	researcher.Vector = vector

	stored, err := db.ProfileRepository().PutProfile(ctx, researcher)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded profile", "name", stored.Name, "id", stored.Id)

	fmt.Printf("Seeded database at %s\n", *dbPath)
}
