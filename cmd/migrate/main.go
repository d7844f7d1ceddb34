// Command migrate prepara la base Mongo: índices únicos y chequeo de
// duplicados que los impedirían.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Mantenimiento de la base Mongo",
	Long: `Crea los índices únicos que necesita la API y reporta los
documentos duplicados que impiden crearlos.

Examples:
  # Ver si hay duplicados antes de crear los índices
  migrate duplicates

  # Crear índices (idempotente)
  migrate indexes`,
	SilenceUsage: true,
}

var timeout time.Duration

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "timeout total de la operación")

	rootCmd.AddCommand(indexesCmd)
	rootCmd.AddCommand(duplicatesCmd)
}

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Crear los índices únicos (tmdbId, accountId+movieId, email)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, database *mongo.Database) error {
			if err := db.EnsureIndexes(ctx, database); err != nil {
				return fmt.Errorf("%w (corré `migrate duplicates` para ver qué lo impide)", err)
			}
			for _, spec := range db.RequiredIndexes {
				log.Info().Str("collection", spec.Collection).Str("index", spec.Name).Msg("✓ índice")
			}
			return nil
		})
	},
}

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Listar grupos de documentos que violan un índice único",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, database *mongo.Database) error {
			dups, err := db.FindDuplicates(ctx, database)
			if err != nil {
				return err
			}
			if len(dups) == 0 {
				log.Info().Msg("✓ sin duplicados")
				return nil
			}
			for _, d := range dups {
				log.Warn().
					Str("collection", d.Collection).
					Str("index", d.Index).
					Interface("key", d.Key).
					Int("count", d.Count).
					Msg("duplicado")
			}
			return fmt.Errorf("%d grupos duplicados", len(dups))
		})
	},
}

func withDatabase(parent context.Context, fn func(context.Context, *mongo.Database) error) error {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	log.Info().Str("db", cfg.MongoDB).Msg("conectado")
	return fn(ctx, database)
}
