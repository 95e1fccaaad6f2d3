package routes

import (
	"jackpot/controllers/entrada"
	"jackpot/controllers/evento"
	"jackpot/controllers/jackpot"
	"jackpot/controllers/saida"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("🟢 API Jackpot rodando!")
	})

	entradas := app.Group("/entradas")
	entradas.Post("/", entrada.Create)
	entradas.Get("/", entrada.List)
	entradas.Put("/:id", entrada.Update)

	saidas := app.Group("/saidas")
	saidas.Post("/", saida.Create)
	saidas.Get("/", saida.List)
	saidas.Get("/ultimas", saida.Ultimas)
	saidas.Get("/por-sede/:id", saida.PorSede)
	saidas.Put("/:id", saida.Update)

	app.Get("/jackpot/atual", jackpot.Atual)

	eventos := app.Group("/eventos")
	eventos.Get("/retiradas", evento.Retiradas)
	eventos.Get("/baixas", evento.ListBaixas)
	eventos.Post("/baixas", evento.CreateBaixa)
}
