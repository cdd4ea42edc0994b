package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

var seedPathwaysCmd = &cobra.Command{
	Use:   "seed-pathways",
	Short: "Replace the pathway questionnaire with the standard questions",
	Long:  `Delete all existing pathway questions and insert the standard five-question onboarding questionnaire. Recommendation bundles start empty and are configured afterwards through the API.`,
	RunE:  runSeedPathways,
}

func init() {
	rootCmd.AddCommand(seedPathwaysCmd)
}

func seedPathways() []db.Pathway {
	return []db.Pathway{
		{
			Question: "What stage is your business in?",
			AnswerOptions: map[string]string{
				"idea":        "Idea",
				"early":       "Early Stage",
				"growth":      "Growing Business",
				"established": "Established Business",
			},
		},
		{
			Question: "What type of support are you looking for?",
			AnswerOptions: map[string]string{
				"funding":    "Funding",
				"mentorship": "Mentorship",
				"networking": "Networking",
				"training":   "Training/Education",
			},
		},
		{
			Question: "What industry are you in or interested in?",
			AnswerOptions: map[string]string{
				"tech":          "Technology/Software",
				"health":        "Healthcare/HealthTech",
				"green":         "GreenTech/Sustainability",
				"food":          "Food & Beverage",
				"manufacturing": "Manufacturing",
				"media":         "Digital Media/Creative",
			},
		},
		{
			Question: "What is your primary role?",
			AnswerOptions: map[string]string{
				"founder":      "Startup Founder/Entrepreneur",
				"student":      "Student",
				"professional": "Working Professional",
				"investor":     "Investor",
				"mentor":       "Mentor/Advisor",
			},
		},
		{
			Question: "What is your biggest challenge right now?",
			AnswerOptions: map[string]string{
				"validation": "Validating my idea",
				"funding":    "Finding funding",
				"team":       "Building a team",
				"customers":  "Finding customers",
				"scaling":    "Scaling my business",
			},
		},
	}
}

func runSeedPathways(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	pathways := seedPathways()
	if err := database.ReplacePathways(ctx, pathways); err != nil {
		return err
	}

	fmt.Printf("Seeded %d pathways\n", len(pathways))
	return nil
}
