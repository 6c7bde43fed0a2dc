package main

import (
	"log"

	_ "github.com/citypulse/app-announcements/docs"
	"github.com/citypulse/app-announcements/internal/api/routes"
	"github.com/citypulse/app-announcements/internal/config"
	"github.com/citypulse/app-announcements/internal/observability"
)

// @title           CityPulse Announcements API
// @version         1.0
// @description     Municipal announcements catalog with text search, personalized recommendations, trending and issue reporting. The catalog lives in memory and is rebuilt on restart.

// @contact.name   CityPulse
// @contact.email  support@citypulse.gov.za

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
