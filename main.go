package main

import (
	"log"

	"github.com/steven202-max/resist-track/configuration"
	"github.com/steven202-max/resist-track/jobs"
	"github.com/steven202-max/resist-track/routes"
	"github.com/steven202-max/resist-track/seed"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
}

func main() {
	//Perform application initialization
	Init()

	if err := seed.PopulateAntibiotics(configuration.DB); err != nil {
		log.Println("Seeding antibiotics failed:", err)
	}
	jobs.StartDailyScheduler()

	r := routes.PortalRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
