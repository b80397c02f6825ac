package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"alpinepulse/cmd/fx/catalog_fx"
	"alpinepulse/cmd/fx/controllers_fx"
	"alpinepulse/cmd/fx/db_fx"
	"alpinepulse/cmd/fx/memcache_fx"
	"alpinepulse/cmd/fx/planner_fx"
	"alpinepulse/internal/api"
	"alpinepulse/internal/api/controllers"
	"alpinepulse/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	api.RegisterRoutes(r, plannerController, catalogController)

	distDir := os.Getenv("FRONTEND_DIST")
	if distDir == "" {
		distDir = "./dist"
	}
	api.RegisterSPA(r, distDir)

	return r
}
