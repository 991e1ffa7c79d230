package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"slp-server/config"
	"slp-server/di"
	"slp-server/util"
)

const CATEGORY_BREAKDOWN_CHART_PATH = "category_breakdown.html"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("refreshing catalog!")
	if err := container.CatalogRefresher.RefreshCatalog(); err != nil {
		log.Printf("Initial catalog refresh failed: %v", err)
	}

	places := container.DirectoryService.GetPlaces()
	if err := util.PlotCategoryBreakdown(places, CATEGORY_BREAKDOWN_CHART_PATH); err != nil {
		log.Printf("Failed to render category breakdown: %v", err)
	}

	log.Println("starting periodic job!")
	container.CatalogRefresher.StartPeriodicJob(config.RefreshInterval())

	log.Println("starting server!")
	container.GuideHttpServer.Start()
}
