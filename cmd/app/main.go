package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"scribeassist/cmd"
	"scribeassist/internal/adapters/in/http"
	"scribeassist/internal/adapters/out/redissession"
	"scribeassist/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultInquiryMaxAge = 48 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	sessions := mustConnectSessions(configs)
	defer sessions.Close()

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		root.CreateEscalateStaleInquiriesCommandHandler(),
		inquiryMaxAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := http.NewServer(http.ServerParams{
		CreateOrder:         root.CreateCreateOrderCommandHandler(),
		UpdateOrderContent:  root.CreateUpdateOrderContentCommandHandler(),
		ChangeOrderStatus:   root.CreateChangeOrderStatusCommandHandler(),
		ChangePaymentStatus: root.CreateChangePaymentStatusCommandHandler(),
		AssignWriter:        root.CreateAssignWriterCommandHandler(),
		CancelOrder:         root.CreateCancelOrderCommandHandler(),
		DeleteOrder:         root.CreateDeleteOrderCommandHandler(),
		CreateInquiry:       root.CreateCreateInquiryCommandHandler(),
		UpdateInquiry:       root.CreateUpdateInquiryCommandHandler(),
		DeleteInquiry:       root.CreateDeleteInquiryCommandHandler(),
		CreatePost:          root.CreateCreatePostCommandHandler(),
		UpdatePost:          root.CreateUpdatePostCommandHandler(),
		RegisterCustomer:    root.CreateRegisterCustomerCommandHandler(),
		GetOrders:           root.CreateGetOrdersQueryHandler(),
		GetOrder:            root.CreateGetOrderQueryHandler(),
		GetInquiries:        root.CreateGetInquiriesQueryHandler(),
		GetPosts:            root.CreateGetPostsQueryHandler(),
		GetPostBySlug:       root.CreateGetPostBySlugQueryHandler(),
		GetDashboardStats:   root.CreateGetDashboardStatsQueryHandler(),
		Users:               root.UserRepository(),
		Sessions:            sessions,
		Pricing:             root.PricingEngine(),
		Logger:              logger,
	})

	e := echo.New()
	server.RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisURL:      goDotEnvVariable("REDIS_URL"),
		InquiryMaxAge: goDotEnvVariable("INQUIRY_MAX_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError is required so unique violations surface as
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustConnectSessions(configs cmd.Config) *redissession.Store {
	sessions, err := redissession.NewStore(context.Background(), configs.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	return sessions
}

func inquiryMaxAge(configs cmd.Config) time.Duration {
	if configs.InquiryMaxAge == "" {
		return defaultInquiryMaxAge
	}
	maxAge, err := time.ParseDuration(configs.InquiryMaxAge)
	if err != nil {
		log.Fatalf("Invalid INQUIRY_MAX_AGE: %v", err)
	}
	return maxAge
}
