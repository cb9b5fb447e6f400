package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffzip_go/internal/config"
	"huffzip_go/internal/handler"
	"huffzip_go/internal/repo"
	"huffzip_go/internal/router"
	"huffzip_go/internal/service"
	"huffzip_go/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	jobRepo := repo.NewJobRepoInMemory()
	if cfg.DatabaseDSN != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatal(err)
		}
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		jobRepo = repo.NewJobRepoPostgres(pool)
	}

	codecSvc := service.NewCodecService(jobRepo, logg)
	codecH := handler.NewCodecHandler(codecSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
