package server

import (
	"awei/internal/config"
	"awei/internal/gatewayclient"
	"awei/internal/handler"
	"awei/internal/repository"
	"awei/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles the per-collection stores
type Repositories struct {
	User      repository.IUserRepository
	WorkSheet repository.IWorkSheetRepository
	Payment   repository.IPaymentRepository
	Message   repository.IMessageRepository
}

// Services bundles the business-logic layer
type Services struct {
	Token     *service.TokenService
	User      *service.UserService
	WorkSheet *service.WorkSheetService
	Payment   *service.PaymentService
	Message   *service.MessageService
}

// Handlers bundles the HTTP layer
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	WorkSheet *handler.WorkSheetHandler
	Payment   *handler.PaymentHandler
	Message   *handler.MessageHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:      repository.NewUserRepository(db),
		WorkSheet: repository.NewWorkSheetRepository(db),
		Payment:   repository.NewPaymentRepository(db),
		Message:   repository.NewMessageRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories) *Services {
	intents := service.NewStripeIntentClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.Currency,
		gatewayclient.InitGatewayHTTPClient(),
	)
	return &Services{
		Token:     service.NewTokenService(cfg.Auth.TokenSecret),
		User:      service.NewUserService(repos.User),
		WorkSheet: service.NewWorkSheetService(repos.WorkSheet),
		Payment:   service.NewPaymentService(repos.Payment, repos.User, intents),
		Message:   service.NewMessageService(repos.Message),
	}
}

func InitHandlers(cfg *config.Config, services *Services) *Handlers {
	return &Handlers{
		Auth:      handler.NewAuthHandler(services.Token, cfg.IsProduction()),
		User:      handler.NewUserHandler(services.User),
		WorkSheet: handler.NewWorkSheetHandler(services.WorkSheet),
		Payment:   handler.NewPaymentHandler(services.Payment),
		Message:   handler.NewMessageHandler(services.Message),
	}
}
