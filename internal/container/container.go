package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/camartes/api/internal/models"
	"github.com/camartes/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, dbName)

	otpService := services.NewOtpService(repo)
	authService := services.NewAuthService(repo, otpService, logger)
	profileService := services.NewProfileService(repo, repo)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		AuthService:    authService,
		ProfileService: profileService,
	}
}
