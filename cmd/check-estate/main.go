package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/you-rent/api/internal/platform/config"
	firestoreclient "github.com/you-rent/api/internal/platform/firestore"
)

// Dumps a raw estate document. Handy for verifying that unset optional
// fields were actually omitted on write rather than stored as zero/null.
func main() {
	flag.Parse()
	docID := flag.Arg(0)
	if docID == "" {
		log.Fatal("usage: check-estate <estate-doc-id>")
	}

	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	client, _, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer client.Close()

	doc, err := client.Collection("estates").Doc(docID).Get(ctx)
	if err != nil {
		log.Fatalf("get estate %s: %v", docID, err)
	}

	data := doc.Data()
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatalf("marshal estate %s: %v", docID, err)
	}

	fmt.Printf("Document ID: %s\n", docID)
	fmt.Println(string(jsonData))

	for _, field := range []string{"score", "pictureUrls", "isActive", "heatingType"} {
		if v, ok := data[field]; ok {
			fmt.Printf("%s: %v (%T)\n", field, v, v)
		} else {
			fmt.Printf("%s: omitted\n", field)
		}
	}
}
