package middlewares

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Cors libera o frontend local, o domínio de produção e qualquer preview
// *.vercel.app, além de origens extras via CORS_ORIGINS (separadas por
// vírgula). Requisições sem Origin (curl, health checks) passam direto.
func Cors() fiber.Handler {
	allowed := map[string]bool{
		"http://localhost:5173":                     true,
		"https://jackpot-frontend-three.vercel.app": true,
	}
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = true
		}
	}

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			if strings.HasSuffix(strings.ToLower(origin), ".vercel.app") {
				return true
			}
			return allowed[origin]
		},
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		MaxAge:           86400,
	})
}
