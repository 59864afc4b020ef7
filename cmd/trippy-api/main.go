// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trippy/internal/ai"
	"trippy/internal/config"
	httptransport "trippy/internal/http"
	"trippy/internal/infra"
	"trippy/internal/maps"
	"trippy/internal/modules/itinerary"
	"trippy/internal/modules/location"
	"trippy/internal/modules/quota"
	"trippy/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
	} else {
		log.Printf("TRIPPY_FIREBASE_PROJECT_ID not set; running without token verification")
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	var geo service.Geocoder
	if cfg.Maps.APIKey != "" {
		geoSvc, err := maps.NewGeocodeService(cfg.Maps.APIKey, redisClient)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geo = geoSvc
	} else {
		log.Printf("MAPS_API_KEY not set; weather cards will carry no coordinates")
	}

	locationSvc := location.NewService(location.NewStore(dbPool))
	itinerarySvc := itinerary.NewService(itinerary.NewStore(dbPool))
	quotaSvc := quota.NewService(quota.NewStore(dbPool))

	assistant := service.NewAssistant(provider, locationSvc, itinerarySvc, geo, quotaSvc)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(assistant, verifier),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
