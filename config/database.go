package config

import (
	"context"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func ConnectDB() *mongo.Client {

	Logger.Info("Attempting to connect to MongoDB...")

	// Read from environment variable
	mongoURI := os.Getenv("MONGO_URI")

	// Fallback for local development
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	Logger.Info("Using Mongo URI", zap.String("uri", mongoURI))

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		Logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		Logger.Fatal("MongoDB is not reachable", zap.Error(err))
	}

	Logger.Info("Successfully connected to MongoDB!")
	return client
}

var (
	Client      *mongo.Client
	connectOnce sync.Once
)

func OpenCollection(collectionName string) *mongo.Collection {

	connectOnce.Do(func() {
		Client = ConnectDB()
	})

	if Client == nil {
		Logger.Fatal("MongoDB client is not initialized.")
	}

	return Client.Database("epochdb").Collection(collectionName)
}
