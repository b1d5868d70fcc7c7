package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/you-rent/api/internal/business/rating"
	"github.com/you-rent/api/internal/platform/config"
	firestoreclient "github.com/you-rent/api/internal/platform/firestore"
	"github.com/you-rent/api/internal/repository"
	"github.com/you-rent/api/pkg/model"
)

// Recomputes every estate's and profile's aggregate score from the comments
// collection. Useful after manual data edits or imports that bypassed the
// rating service.
func main() {
	dryRun := flag.Bool("dry-run", false, "print recomputed scores without writing them")
	flag.Parse()

	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer client.Close()
	log.Printf("connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)

	docs, err := client.Collection("comments").Documents(ctx).GetAll()
	if err != nil {
		log.Fatalf("fetch comments: %v", err)
	}

	byEstate := make(map[string][]model.Comment)
	byProfile := make(map[string][]model.Comment)
	for _, doc := range docs {
		var c model.Comment
		if err := doc.DataTo(&c); err != nil {
			log.Fatalf("decode comment %s: %v", doc.Ref.ID, err)
		}
		switch {
		case c.EstateID != "":
			byEstate[c.EstateID] = append(byEstate[c.EstateID], c)
		case c.ProfileID != "":
			byProfile[c.ProfileID] = append(byProfile[c.ProfileID], c)
		}
	}
	fmt.Printf("found %d comments over %d estates and %d profiles\n",
		len(docs), len(byEstate), len(byProfile))

	estateRepo := repository.NewEstateRepository(client)
	userRepo := repository.NewUserRepository(client)

	for estateID, comments := range byEstate {
		score := rating.Average(comments)
		fmt.Printf("estate %s: %d comments -> %.2f\n", estateID, len(comments), score)
		if *dryRun {
			continue
		}
		if err := estateRepo.UpdateEstateScore(ctx, estateID, score); err != nil {
			log.Printf("estate %s: %v", estateID, err)
		}
	}
	for profileID, comments := range byProfile {
		score := rating.Average(comments)
		fmt.Printf("profile %s: %d comments -> %.2f\n", profileID, len(comments), score)
		if *dryRun {
			continue
		}
		if err := userRepo.UpdateUserScore(ctx, profileID, score); err != nil {
			log.Printf("profile %s: %v", profileID, err)
		}
	}

	fmt.Println("done")
}
