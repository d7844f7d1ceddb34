package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones
const (
	UsersCollection           = "users"
	MoviesCollection          = "movies"
	RatingsCollection         = "ratings"
	RecommendationsCollection = "recommendations"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// Connect abre un cliente y verifica la conexión con un ping.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(dbName), nil
}

func InitMongo(cfg *config.Config) {
	logger := logging.WithComponent("mongo")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, database, err := Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("error conectando")
	}

	mongoClient = client
	mongoDB = database
	logger.Info().Str("db", cfg.MongoDB).Msg("conectado")
}

func DB() *mongo.Database {
	return mongoDB
}

func Disconnect(ctx context.Context) error {
	if mongoClient == nil {
		return nil
	}
	return mongoClient.Disconnect(ctx)
}

// ====== Índices ======

// IndexSpec describe un índice que la API necesita para garantizar unicidad.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
}

// RequiredIndexes son los índices únicos que arbitran las carreras de
// creación: una película por tmdbId, un rating por (accountId, movieId),
// un usuario por email.
var RequiredIndexes = []IndexSpec{
	{Collection: MoviesCollection, Name: "uniq_tmdbId", Keys: bson.D{{Key: "tmdbId", Value: 1}}},
	{Collection: RatingsCollection, Name: "uniq_account_movie", Keys: bson.D{{Key: "accountId", Value: 1}, {Key: "movieId", Value: 1}}},
	{Collection: UsersCollection, Name: "uniq_email", Keys: bson.D{{Key: "email", Value: 1}}},
}

// EnsureIndexes crea los índices únicos si no existen. Es idempotente.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for _, spec := range RequiredIndexes {
		model := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetName(spec.Name).SetUnique(true),
		}
		if _, err := database.Collection(spec.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s.%s: %w", spec.Collection, spec.Name, err)
		}
	}

	// índice secundario para listar ratings por cuenta
	_, err := database.Collection(RatingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "accountId", Value: 1}, {Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("account_updated"),
	})
	if err != nil {
		return fmt.Errorf("create index ratings.account_updated: %w", err)
	}
	return nil
}

// Duplicate es un grupo de documentos que violaría un índice único.
type Duplicate struct {
	Collection string `json:"collection"`
	Index      string `json:"index"`
	Key        bson.M `json:"key"`
	Count      int    `json:"count"`
}

// FindDuplicates busca grupos que impedirían crear los índices únicos.
func FindDuplicates(ctx context.Context, database *mongo.Database) ([]Duplicate, error) {
	var out []Duplicate
	for _, spec := range RequiredIndexes {
		id := bson.M{}
		for _, k := range spec.Keys {
			id[k.Key] = "$" + k.Key
		}
		pipeline := mongo.Pipeline{
			{{Key: "$group", Value: bson.M{"_id": id, "count": bson.M{"$sum": 1}}}},
			{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
		}
		cur, err := database.Collection(spec.Collection).Aggregate(ctx, pipeline)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", spec.Collection, err)
		}
		for cur.Next(ctx) {
			var row struct {
				ID    bson.M `bson:"_id"`
				Count int    `bson:"count"`
			}
			if err := cur.Decode(&row); err != nil {
				cur.Close(ctx)
				return nil, err
			}
			out = append(out, Duplicate{Collection: spec.Collection, Index: spec.Name, Key: row.ID, Count: row.Count})
		}
		err = cur.Err()
		cur.Close(ctx)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
