package main

import (
	"go.uber.org/zap"

	"tradeboard/internal/config"
	"tradeboard/internal/handler"
	"tradeboard/internal/pkg"
	redisrepo "tradeboard/internal/repository/redis"
	"tradeboard/internal/repository/sqldb"
	"tradeboard/internal/router"
	"tradeboard/internal/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	logger, err := pkg.NewLogger("")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	pkg.SetJWTSecrets(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret)

	db, err := sqldb.Open(cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := sqldb.AutoMigrate(db); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	client, err := redisrepo.New(cfg.Redis)
	if err != nil {
		logger.Fatal("connect redis", zap.Error(err))
	}

	tokens := &redisrepo.TokenRepository{Client: client}
	challenges := &redisrepo.ChallengeRepository{Client: client}
	captcha := service.NewCaptchaService(challenges, pkg.NewCaptchaRenderer(cfg.Captcha.Dir))

	h := router.Handlers{
		User:    handler.NewUserHandler(service.NewUserService(db, tokens, captcha, logger), captcha),
		Listing: handler.NewListingHandler(service.NewListingService(db), service.NewPostService(db)),
		Comment: handler.NewCommentHandler(service.NewCommentService(db)),
		Profile: handler.NewProfileHandler(service.NewProfileService(db)),
		Shout:   handler.NewShoutHandler(service.NewShoutService(db)),
	}

	r := router.InitRouter(h, tokens, cfg.Captcha.Dir)
	if err := r.Run(cfg.HTTPServer.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
