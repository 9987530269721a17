package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/notegraph"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
)

var sampleNotes = []struct {
	title   string
	content string
}{
	{
		title:   "Phoenix Kickoff",
		content: "Project Phoenix kicked off today. The budget covers two engineers and a designer until the end of the quarter.",
	},
	{
		title:   "Phoenix Budget Review",
		content: "Reviewed the Project Phoenix budget with finance. Hiring is approved, tooling spend needs another sign-off.",
	},
	{
		title:   "Pasta Night",
		content: "Recipe notes for pasta night. Boil salted water, cook the spaghetti al dente, finish in the pan with the sauce.",
	},
}

func main() {
	ctx := context.Background()

	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	g, err := notegraph.NewNoteGraph(dbConfig, 384)
	if err != nil {
		log.Fatalf("Failed to create notegraph: %v", err)
	}
	defer g.Close()

	// Set up the default pipeline (embeddings + paragraph chunking)
	if err := g.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	// Ingest the sample notes; similar notes link up automatically
	fmt.Println("Ingesting notes...")
	for _, sample := range sampleNotes {
		note, pairs, err := g.CreateNote(ctx, sample.title, sample.content, model.ItemTypeNote)
		if err != nil {
			log.Fatalf("Failed to ingest note: %v", err)
		}
		fmt.Printf("Ingested %q (%s) with %d links\n", note.Title, note.ID, len(pairs))
	}

	// Ranked search over the whole collection
	queryText := "phoenix budget"
	fmt.Printf("\nSearching: %s\n", queryText)

	results, err := g.SearchNotes(ctx, queryText)
	if err != nil {
		log.Fatalf("Failed to search: %v", err)
	}
	for i, result := range results {
		fmt.Printf("%d. %s (score %.3f)\n", i+1, result.Note.Title, result.Score)
		fmt.Printf("   %s\n", g.Snippet(result.Note.Content, queryText))
	}

	// Shortest path between the two top results
	if len(results) >= 2 {
		path := g.ShortestPath(results[0].Note.ID, results[1].Note.ID)
		fmt.Printf("\nPath between the top results: %d hops\n", len(path)-1)
	}

	// Conversational asking through the intent router
	session := g.NewSession()
	for _, utterance := range []string{
		"what is 2+2*5",
		"tell me about the phoenix budget review",
		"when was it approved",
	} {
		response, err := g.Ask(ctx, utterance, session)
		if err != nil {
			log.Fatalf("Failed to ask: %v", err)
		}
		fmt.Printf("\n> %s\n%s\n", utterance, response.Text)
		if response.Citation != nil {
			fmt.Printf("(cited note %s)\n", response.Citation)
		}
	}
}
