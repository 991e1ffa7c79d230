package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"slp-server/api"
	"slp-server/api/sheets"
	"slp-server/config"
	"slp-server/dao/redis"
	"slp-server/db"
	"slp-server/importer"
	"slp-server/server"
	"slp-server/server/handlers"
	services "slp-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient      db.RedisClient
	PlaceDao         *redis.RedisPlaceDAO
	SheetsAPI        sheets.SheetsAPI
	Importer         *importer.RecordImporter
	DirectoryService *services.DirectoryService
	CatalogRefresher *services.CatalogRefresherService
	DirectoryHandler *handlers.DirectoryHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	GuideHttpServer  *server.GuideHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	placeDao := redis.NewRedisPlaceDAO(redisClient)

	sheetsAPI := newSheetsAPI(ctx, env)

	recordImporter := importer.NewRecordImporter(sheetsAPI, importer.Config{
		SpreadsheetID: config.SheetID(),
		OfflineBuild:  config.OfflineBuild(),
	})

	directoryService := services.NewDirectoryService(placeDao, recordImporter)
	catalogRefresher := services.NewCatalogRefresherService(placeDao, recordImporter)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(directoryHandler, muxRouter)
	guideHttpServer := server.NewGuideHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:      redisClient,
		PlaceDao:         placeDao,
		SheetsAPI:        sheetsAPI,
		Importer:         recordImporter,
		DirectoryService: directoryService,
		CatalogRefresher: catalogRefresher,
		DirectoryHandler: directoryHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		GuideHttpServer:  guideHttpServer,
	}
}

// newSheetsAPI picks the spreadsheet client: fixtures outside prod, the live
// REST client when credentials resolve, and an always-erroring stub when
// they do not, so the importer falls back to its static data instead of the
// process refusing to start.
func newSheetsAPI(ctx context.Context, env string) sheets.SheetsAPI {
	if env != "prod" {
		log.Printf("Using mock sheets api")
		return sheets.NewSheetsApiClientMock()
	}

	authClient, err := sheets.NewAuthorizedHTTPClient(ctx, config.CredentialsPath(), config.ClientEmail(), config.PrivateKey())
	if err != nil {
		log.Printf("Sheets credentials unavailable: %v", err)
		return sheets.NewSheetsApiUnavailable(err)
	}

	log.Printf("Using prod sheets api")
	httpClient := api.NewHTTPClientWith(config.SHEETS_ENDPOINT_BASE_V4, authClient)
	return sheets.NewSheetsApiClient(httpClient)
}
