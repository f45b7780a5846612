package api

import "github.com/gofiber/fiber/v2"

// NewApp wires every route of the simulator onto a fresh fiber app.
func NewApp(handler *SchedulerHandlerImpl) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/processes", handler.RegisterProcess)
		v1.Get("/processes", handler.ListProcesses)
		v1.Get("/fcfs", handler.FirstComeFirstServe)
		v1.Get("/sjf", handler.ShortestJobFirst)
		v1.Get("/rr", handler.RoundRobin)
		v1.Get("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:algorithm", handler.Schedule)
	}

	{
		v1.Get("/memory", handler.MemoryState)
		v1.Post("/memory/load", handler.LoadMemory)
		v1.Post("/memory/replace", handler.ReplaceMemory)
		v1.Delete("/memory/:id", handler.UnloadMemory)
	}

	{
		v1.Get("/fs", handler.ListDirectory)
		v1.Post("/fs/dirs", handler.MakeDirectory)
		v1.Post("/fs/files", handler.CreateFile)
		v1.Get("/fs/files/:name", handler.ReadFile)
		v1.Put("/fs/files/:name", handler.WriteFile)
		v1.Delete("/fs/:name", handler.RemoveEntry)
	}

	return app
}
