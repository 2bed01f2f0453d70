package reroute

import (
	"context"
	"errors"
	"time"

	"github.com/voyago/voyago/pkg/database"
	"github.com/voyago/voyago/pkg/itinerary"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJourneyRepository stores journey aggregates as single documents in
// the journeys collection. Updates replace the whole document; the last
// writer wins.
type MongoJourneyRepository struct {
}

func NewMongoJourneyRepository() *MongoJourneyRepository {
	return &MongoJourneyRepository{}
}

func (r *MongoJourneyRepository) GetByPrimaryIdentifier(ctx context.Context, identifier string) (*itinerary.Journey, error) {
	journeysCollection := database.GetCollection("journeys")

	var journey *itinerary.Journey
	err := journeysCollection.FindOne(ctx, bson.M{"primaryidentifier": identifier}).Decode(&journey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	journey.RelinkOwnership()

	return journey, nil
}

func (r *MongoJourneyRepository) Insert(ctx context.Context, journey *itinerary.Journey) error {
	journeysCollection := database.GetCollection("journeys")

	journey.CreationDateTime = time.Now()
	journey.ModificationDateTime = time.Now()

	_, err := journeysCollection.InsertOne(ctx, journey)

	return err
}

func (r *MongoJourneyRepository) Update(ctx context.Context, journey *itinerary.Journey) error {
	journeysCollection := database.GetCollection("journeys")

	journey.ModificationDateTime = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := journeysCollection.ReplaceOne(ctx, bson.M{"primaryidentifier": journey.PrimaryIdentifier}, journey, opts)

	return err
}

// MongoDisruptionRepository stores disruption records in the disruptions
// collection.
type MongoDisruptionRepository struct {
}

func NewMongoDisruptionRepository() *MongoDisruptionRepository {
	return &MongoDisruptionRepository{}
}

func (r *MongoDisruptionRepository) Insert(ctx context.Context, disruption *itinerary.Disruption) error {
	disruptionsCollection := database.GetCollection("disruptions")

	_, err := disruptionsCollection.InsertOne(ctx, disruption)

	return err
}

var _ JourneyRepository = (*MongoJourneyRepository)(nil)
var _ DisruptionRepository = (*MongoDisruptionRepository)(nil)
