package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/espranza/server/internal/config"
	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Config     *config.Config
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	MongoDBClient       *mongo.Client
	AuthService         *services.AuthService
	ContentService      *services.ContentService
	EventService        *services.EventService
	TeamService         *services.TeamService
	RegistrationService *services.RegistrationService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	// Initialize repositories
	mongoRepo := models.MongodbNewRepo(mongoDBClient)

	authService := services.NewAuthService(cfg.AdminPassword, []byte(cfg.AdminJWTSecret))
	contentService := services.NewContentService(mongoRepo)
	eventService := services.NewEventService(mongoRepo)
	teamService := services.NewTeamService(mongoRepo)
	registrationService := services.NewRegistrationService(mongoRepo)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		Cloudinary:          cld,
		MongoDBClient:       mongoDBClient,
		AuthService:         authService,
		ContentService:      contentService,
		EventService:        eventService,
		TeamService:         teamService,
		RegistrationService: registrationService,
	}
}
