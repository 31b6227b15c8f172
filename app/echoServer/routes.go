package echoServer

import (
	"net/http"

	authctrl "librarycirc/app/echoServer/controller/auth"
	catalogctrl "librarycirc/app/echoServer/controller/catalog"
	circulationctrl "librarycirc/app/echoServer/controller/circulation"
	finectrl "librarycirc/app/echoServer/controller/fine"
	notificationctrl "librarycirc/app/echoServer/controller/notification"
	recommendctrl "librarycirc/app/echoServer/controller/recommend"
	reviewctrl "librarycirc/app/echoServer/controller/review"
	"librarycirc/app/echoServer/jwtx"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth         *authctrl.Controller
	Catalog      *catalogctrl.Controller
	Circulation  *circulationctrl.Controller
	Fine         *finectrl.Controller
	Review       *reviewctrl.Controller
	Recommend    *recommendctrl.Controller
	Notification *notificationctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// user_id extraction
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				rid := ctx.Response().Header().Get(echo.HeaderXRequestID)
				ctx.Logger().Warnf("[AUTH] %v req_id=%s ip=%s", err, rid, ctx.RealIP())
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			return next(ctx)
		}
	})

	// Catalog
	auth.GET("/books/available", c.Circulation.ListAvailable)
	auth.POST("/books/donate", c.Catalog.Donate)

	// Circulation
	auth.POST("/loans", c.Circulation.Issue)
	auth.POST("/loans/:id/return", c.Circulation.Return)
	auth.GET("/loans/my", c.Circulation.OpenLoans)

	// Fines
	auth.GET("/fines/my", c.Fine.MyFines)

	// Reviews
	auth.GET("/reviews", c.Review.BrowseAll)
	auth.GET("/reviews/unrated", c.Review.Unrated)
	auth.POST("/reviews", c.Review.Submit)

	// Recommendations
	auth.GET("/recommendations", c.Recommend.List)

	// Notifications
	auth.GET("/notifications", c.Notification.List)
}
