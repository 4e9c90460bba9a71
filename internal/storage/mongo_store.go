package storage

import (
	"context"
	"crypto/tls"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/models"
)

// MongoStore keeps closets, favorites, and profiles in MongoDB collections
// keyed by profile id. Save replaces the profile's whole collection, keeping
// the same whole-snapshot semantics the file store has.
type MongoStore struct {
	client       *mongo.Client
	db           *mongo.Database
	itemsCol     *mongo.Collection
	favoritesCol *mongo.Collection
	profilesCol  *mongo.Collection
	log          *zap.Logger
}

func NewMongoStore(ctx context.Context, mongoURI, dbName string, log *zap.Logger) (*MongoStore, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetTLSConfig(tlsCfg))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	store := &MongoStore{
		client:       client,
		db:           db,
		itemsCol:     db.Collection("items"),
		favoritesCol: db.Collection("favorites"),
		profilesCol:  db.Collection("profiles"),
		log:          log,
	}

	// Best-effort indexes.
	_, _ = store.itemsCol.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	_, _ = store.favoritesCol.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "profile_id", Value: 1}, {Key: "outfit_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	log.Info("MongoDB connected", zap.String("db", dbName))
	return store, nil
}

func (s *MongoStore) LoadItems(ctx context.Context, profileID string) ([]models.ClothingItem, error) {
	cur, err := s.itemsCol.Find(
		ctx,
		bson.M{"profile_id": profileID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.ClothingItem{}
	for cur.Next(ctx) {
		var item models.ClothingItem
		if err := cur.Decode(&item); err != nil {
			// Undecodable documents are skipped, not fatal.
			s.log.Warn("skipping corrupt item document", zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, cur.Err()
}

func (s *MongoStore) SaveItems(ctx context.Context, profileID string, items []models.ClothingItem) error {
	if _, err := s.itemsCol.DeleteMany(ctx, bson.M{"profile_id": profileID}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		item.ProfileID = profileID
		docs[i] = item
	}
	_, err := s.itemsCol.InsertMany(ctx, docs)
	return err
}

func (s *MongoStore) LoadFavorites(ctx context.Context, profileID string) ([]models.Favorite, error) {
	cur, err := s.favoritesCol.Find(ctx, bson.M{"profile_id": profileID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	favs := []models.Favorite{}
	for cur.Next(ctx) {
		var fav models.Favorite
		if err := cur.Decode(&fav); err != nil {
			s.log.Warn("skipping corrupt favorite document", zap.Error(err))
			continue
		}
		favs = append(favs, fav)
	}
	return favs, cur.Err()
}

func (s *MongoStore) SaveFavorites(ctx context.Context, profileID string, favs []models.Favorite) error {
	if _, err := s.favoritesCol.DeleteMany(ctx, bson.M{"profile_id": profileID}); err != nil {
		return err
	}
	if len(favs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(favs))
	for i, fav := range favs {
		fav.ProfileID = profileID
		docs[i] = fav
	}
	_, err := s.favoritesCol.InsertMany(ctx, docs)
	return err
}

func (s *MongoStore) LoadProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"_id": profileID}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

func (s *MongoStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	_, err := s.profilesCol.ReplaceOne(
		ctx,
		bson.M{"_id": profile.ID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
