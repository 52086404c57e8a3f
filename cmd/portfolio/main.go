package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/database"
	"github.com/techmaster-vietnam/portfolio/utils"
)

func main() {
	// portfolio hash-password <password>: in bcrypt hash cho ADMIN_PASSWORD_HASH
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := utils.HashPassword(os.Args[2])
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	// 0. Load .env file
	if err := godotenv.Load(); err != nil {
		_ = goerrorkit.WrapWithMessage(err, "Warning: .env file not found, using default values or environment variables")
	}

	// 1. Initialize goerrorkit logger
	goerrorkit.InitLogger(goerrorkit.LoggerOptions{
		ConsoleOutput: true,
		FileOutput:    true,
		FilePath:      "logs/errors.log",
		JSONFormat:    true,
		MaxFileSize:   10,
		MaxBackups:    5,
		MaxAge:        30,
		LogLevel:      "info",
	})

	// 2. Configure stack trace for this application
	goerrorkit.ConfigureForApplication("main")

	// 3. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// 4. Connect to database
	db, err := database.Open(cfg.Database)
	if err != nil {
		panic(err)
	}

	// 5. Reset database (only if RESET_DB=true)
	if cfg.Database.Reset {
		if err := database.Reset(db); err != nil {
			panic(err)
		}
	}

	// 6. Run migrations
	if err := database.Migrate(db, cfg.Database.Name); err != nil {
		panic(goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"operation": "migration",
			"database":  cfg.Database.Name,
		}))
	}

	// 7. Seed sample content (only if SEED_DB=true)
	if cfg.Database.Seed {
		if err := database.Seed(db); err != nil {
			panic(err)
		}
	}

	// 8. Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// 9. Add middleware (RequestID must be before ErrorHandler)
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(goerrorkit.FiberErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: cfg.Server.CORSOrigins != "*",
	}))

	// 10. Wire cache, repositories, services, handlers and routes
	p, err := portfolio.New(app, db).WithConfig(cfg).Initialize()
	if err != nil {
		panic(err)
	}

	// 11. Start server, shut down gracefully on SIGINT/SIGTERM
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			panic(goerrorkit.NewSystemError(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Server shutdown failed"), "main")
	}
	if err := p.Close(); err != nil {
		goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Cache store close failed"), "main")
	}
	if err := database.Close(db); err != nil {
		goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Database close failed"), "main")
	}
}
