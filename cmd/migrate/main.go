package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/academy"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/pkg/config"
	"github.com/stitts-dev/franchise-sim/pkg/database"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|seed]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.New(db)

	switch command := os.Args[1]; command {
	case "up":
		if err := st.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Info("Migrations completed successfully")

	case "down":
		if err := st.DropAll(); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Info("Tables dropped successfully")

	case "seed":
		if err := st.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		source, err := random.SourceFor(cfg.RNGSource)
		if err != nil {
			log.Fatalf("Invalid RNG source: %v", err)
		}
		if err := seedData(context.Background(), st, random.NewGenerator(source)); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		log.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

var demoRosterSize = map[models.Sport]int{
	models.SportBasketball: 12,
	models.SportSoccer:     20,
	models.SportBaseball:   26,
}

const (
	demoSeed = 20240601
	// seeded players are academy graduates a few seasons on
	demoAgeOffset = 5
)

// seedData creates one demo club per sport with a roster grown from generated
// prospects and an optimal lineup.
func seedData(ctx context.Context, st *store.Store, gen *random.Generator) error {
	svc := services.New(services.Dependencies{
		Store:  st,
		Random: gen,
		Logger: logger.WithService("migrate"),
	})
	scouts := scouting.NewEngine(gen)

	for i, sport := range models.Sports() {
		seed := int64(demoSeed + i*1_000_000)
		club, err := svc.Clubs.CreateClub(ctx, services.CreateClubRequest{
			Name:           fmt.Sprintf("Demo %s Club", sport),
			Sport:          string(sport),
			AcademyBudget:  400_000,
			ScoutingBudget: 300_000,
			Seed:           &seed,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s club: %w", sport, err)
		}

		n := demoRosterSize[sport]
		reports := scouts.GenerateScoutingReports(0, n, scouting.QualityMultiplier(1_000_000), seed-1)
		for j, report := range reports {
			player, err := graduate(report, sport)
			if err != nil {
				return err
			}
			player.ID = fmt.Sprintf("seed-%s-%02d", sport, j+1)
			player.Age += demoAgeOffset
			if _, err := svc.Clubs.AddRosterPlayer(ctx, club.ID, player); err != nil {
				return fmt.Errorf("failed to add roster player: %w", err)
			}
		}

		if _, err := svc.Lineups.ApplyOptimalLineup(ctx, club.ID); err != nil {
			return fmt.Errorf("failed to build %s lineup: %w", sport, err)
		}

		logger.WithClubContext(club.ID, string(sport)).WithFields(logrus.Fields{
			"roster": n,
		}).Info("Seeded demo club")
	}
	return nil
}

// graduate runs a report through the academy pipeline.
func graduate(report models.ScoutingReport, sport models.Sport) (models.Player, error) {
	prospect, err := academy.SignProspectToAcademy(report, 0)
	if err != nil {
		return models.Player{}, err
	}
	prospect, err = academy.PromoteProspect(prospect)
	if err != nil {
		return models.Player{}, err
	}
	return academy.ToRosterPlayer(prospect, sport)
}
