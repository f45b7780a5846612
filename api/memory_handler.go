package api

import (
	"github.com/gofiber/fiber/v2"

	"os-simulator/internal/memory"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
)

func (s *SchedulerHandlerImpl) LoadMemory(ctx *fiber.Ctx) error {
	var request requests.MemoryRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}
	pages, err := s.memory.Load(request.ProcessId, request.Size)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(memoryResponse(s.memory.State(), pages, nil))
}

func (s *SchedulerHandlerImpl) ReplaceMemory(ctx *fiber.Ctx) error {
	var request requests.MemoryRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}
	pages, evicted, err := s.memory.Replace(request.ProcessId, request.Size)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(memoryResponse(s.memory.State(), pages, evicted))
}

func (s *SchedulerHandlerImpl) UnloadMemory(ctx *fiber.Ctx) error {
	if err := s.memory.Unload(ctx.Params("id")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(memoryResponse(s.memory.State(), nil, nil))
}

func (s *SchedulerHandlerImpl) MemoryState(ctx *fiber.Ctx) error {
	return ctx.JSON(memoryResponse(s.memory.State(), nil, nil))
}

func memoryResponse(state memory.State, pages []int, evicted []string) responses.MemoryResponse {
	return responses.MemoryResponse{
		Frames:     state.Frames,
		PageTables: state.PageTables,
		Pages:      pages,
		Evicted:    evicted,
	}
}
