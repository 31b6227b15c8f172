package main

import (
	"context"
	"log/slog"
	"os"

	"librarycirc/app/echoServer"
	authctrl "librarycirc/app/echoServer/controller/auth"
	catalogctrl "librarycirc/app/echoServer/controller/catalog"
	circulationctrl "librarycirc/app/echoServer/controller/circulation"
	finectrl "librarycirc/app/echoServer/controller/fine"
	notificationctrl "librarycirc/app/echoServer/controller/notification"
	recommendctrl "librarycirc/app/echoServer/controller/recommend"
	reviewctrl "librarycirc/app/echoServer/controller/review"
	"librarycirc/app/echoServer/validation"
	"librarycirc/config"
	authrepo "librarycirc/repository/auth"
	catalogrepo "librarycirc/repository/catalog"
	finerepo "librarycirc/repository/fine"
	loanrepo "librarycirc/repository/loan"
	notificationrepo "librarycirc/repository/notification"
	reviewrepo "librarycirc/repository/review"
	authsvc "librarycirc/service/auth"
	catalogsvc "librarycirc/service/catalog"
	circulationsvc "librarycirc/service/circulation"
	finesvc "librarycirc/service/fine"
	notificationsvc "librarycirc/service/notification"
	recommendsvc "librarycirc/service/recommend"
	reviewsvc "librarycirc/service/review"
	"librarycirc/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ar := authrepo.New(db)
	cr := catalogrepo.New()
	lr := loanrepo.New(db)
	fr := finerepo.New(db)
	rr := reviewrepo.New(db)
	nr := notificationrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	cats := catalogsvc.New(db, cr)
	circs := circulationsvc.New(db, lr)
	fs := finesvc.New(fr)
	rvs := reviewsvc.New(rr)
	recs := recommendsvc.New(rr)
	ns := notificationsvc.New(nr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	catalogC := &catalogctrl.Controller{Svc: cats, V: v, Log: log}
	circulationC := &circulationctrl.Controller{Svc: circs, V: v, Log: log}
	fineC := &finectrl.Controller{Svc: fs, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rvs, V: v, Log: log}
	recommendC := &recommendctrl.Controller{Svc: recs, Log: log}
	notificationC := &notificationctrl.Controller{Svc: ns, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		Catalog:      catalogC,
		Circulation:  circulationC,
		Fine:         fineC,
		Review:       reviewC,
		Recommend:    recommendC,
		Notification: notificationC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
