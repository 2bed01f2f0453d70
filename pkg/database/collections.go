package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createStopsIndexes()
	createJourneysIndexes()
	createDisruptionsIndexes()
}

func createStopsIndexes() {
	stopsCollection := GetCollection("stops")
	stopsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2d"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := stopsCollection.Indexes().CreateMany(context.Background(), stopsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createJourneysIndexes() {
	journeysCollection := GetCollection("journeys")
	journeysIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "useridentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "segments.points.stoppointref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "segments.linecode", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := journeysCollection.Indexes().CreateMany(context.Background(), journeysIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createDisruptionsIndexes() {
	disruptionsCollection := GetCollection("disruptions")
	disruptionsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "journeyref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "targetidentifier", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "creationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(32 * 3600), // Expire after 32 hours
		},
	}

	opts := options.CreateIndexes()
	_, err := disruptionsCollection.Indexes().CreateMany(context.Background(), disruptionsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
