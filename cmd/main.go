package main

import (
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/config"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/routes"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
