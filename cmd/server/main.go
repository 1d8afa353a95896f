package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/supabase"
	"portfolio-backend/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Migrations need a direct PostgreSQL connection; everything at runtime
	// goes through PostgREST instead.
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize migrator: %v", err)
		} else {
			if err := migrator.Run(); err != nil {
				log.Printf("Warning: Migration failed: %v", err)
			} else {
				log.Println("Migrations completed successfully")
			}
			migrator.Close()
		}
	}

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	projectStore := supabase.NewProjectStore(supabaseClient)
	projectService := services.NewProjectService(projectStore, storageClient)

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(cfg, projectService)
	authHandler := handlers.NewAuthHandler(cfg)
	projectsHandler := handlers.NewProjectsHandler(projectService)

	// Setup router
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public site
	router.GET("/", pagesHandler.Home)
	router.GET("/coming-soon", pagesHandler.ComingSoon)

	// Admin surface. The page picks prompt vs dashboard itself; mutations are
	// re-verified on every request.
	router.GET("/add", pagesHandler.Admin)
	router.POST("/add/login", authHandler.Login)
	router.POST("/add/logout", authHandler.Logout)

	admin := router.Group("/add")
	admin.Use(middleware.RequireAdmin(cfg))
	admin.POST("/project", projectsHandler.Save)
	admin.POST("/project/delete", projectsHandler.Delete)

	// Read-only JSON API
	api := router.Group("/api/v1")
	api.Use(cors.Default())
	api.GET("/projects", projectsHandler.List)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
