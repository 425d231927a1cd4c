// @title Drinkify API
// @description API for hydration-tracker app "Drinkify"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/syahrillhaiqal/drinkify/internal/api"
	"github.com/syahrillhaiqal/drinkify/internal/cache"
	"github.com/syahrillhaiqal/drinkify/internal/filestore"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/internal/service"
	"github.com/syahrillhaiqal/drinkify/pkg/cleanup"
	"github.com/syahrillhaiqal/drinkify/pkg/config"
	"github.com/syahrillhaiqal/drinkify/pkg/jwtservice"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	achievedCache := cache.New(cache.Options{
		Addr:     cfg.GetStringOr("REDIS_ADDRESS", ""),
		Password: cfg.GetStringOr("REDIS_PASSWORD", ""),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	pictures := filestore.New(filestore.Options{
		Region:  cfg.GetString("AWS_REGION"),
		Bucket:  cfg.GetString("S3_BUCKET"),
		CDNHost: cfg.GetString("S3_CDN_HOST"),
	})

	usersRepo := repository.NewUsersRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	typesRepo := repository.NewWaterTypesRepo(&dbCfg)
	logsRepo := repository.NewWaterLogsRepo(&dbCfg)
	intakeRepo := repository.NewIntakeRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:  service.NewUserService(usersRepo),
		GoalService:  service.NewGoalService(goalsRepo, achievedCache),
		WaterService: service.NewWaterService(goalsRepo, typesRepo, logsRepo, intakeRepo, achievedCache),
		StatsService: service.NewStatsService(goalsRepo, typesRepo, logsRepo, achievedCache),
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
		Pictures:     pictures,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
