package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

// AdminJWT validates the bearer token on admin routes. The parsed *jwt.Token is
// stored under the "user" context key.
func AdminJWT(secret string) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.TokenIssuer),
		jwt.WithAudience(service.TokenAudience),
		jwt.WithExpirationRequired(),
	)
	key := []byte(secret)

	return echojwt.WithConfig(echojwt.Config{
		ContextKey: "user",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			token, err := parser.ParseWithClaims(auth, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil {
				return nil, err
			}
			if !token.Valid {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return token, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			log.Warn().Err(err).Str("path", c.Path()).Msg("Rejected admin request")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired admin token")
		},
	})
}
