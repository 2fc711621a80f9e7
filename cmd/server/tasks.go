package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/seed"
	"github.com/iliyamo/fyyur/internal/service"
)

var seedFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the venue, artist and show tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.Migrate(cmd.Context(), db, cfg.DBDriver); err != nil {
			return err
		}
		logger.Info("schema applied", zap.String("driver", cfg.DBDriver))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load venues, artists and shows from a YAML fixture file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := loadFixtures(seedFile)
		if err != nil {
			return err
		}
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := service.New(
			repository.NewVenueRepo(db),
			repository.NewArtistRepo(db),
			repository.NewShowRepo(db),
			nil, nil, logger,
		)
		res, err := seed.Apply(cmd.Context(), svc, fixtures)
		svc.Wait()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d venues, %d artists, %d shows\n", res.Venues, res.Artists, res.Shows)
		return nil
	},
}

func loadFixtures(path string) (*seed.File, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}
