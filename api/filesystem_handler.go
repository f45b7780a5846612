package api

import (
	"github.com/gofiber/fiber/v2"

	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
)

func (s *SchedulerHandlerImpl) ListDirectory(ctx *fiber.Ctx) error {
	return ctx.JSON(s.directoryResponse())
}

func (s *SchedulerHandlerImpl) MakeDirectory(ctx *fiber.Ctx) error {
	var request requests.FileRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}
	if err := s.fileSystem.Mkdir(request.Name); err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(s.directoryResponse())
}

func (s *SchedulerHandlerImpl) CreateFile(ctx *fiber.Ctx) error {
	var request requests.FileRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}
	if err := s.fileSystem.Touch(request.Name, request.Content); err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(responses.FileResponse{Name: request.Name, Content: request.Content})
}

func (s *SchedulerHandlerImpl) ReadFile(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	content, err := s.fileSystem.Read(name)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.FileResponse{Name: name, Content: content})
}

func (s *SchedulerHandlerImpl) WriteFile(ctx *fiber.Ctx) error {
	var request requests.FileRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}
	name := ctx.Params("name")
	if err := s.fileSystem.Write(name, request.Content); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.FileResponse{Name: name, Content: request.Content})
}

func (s *SchedulerHandlerImpl) RemoveEntry(ctx *fiber.Ctx) error {
	if err := s.fileSystem.Remove(ctx.Params("name")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(s.directoryResponse())
}

func (s *SchedulerHandlerImpl) directoryResponse() responses.DirectoryResponse {
	return responses.DirectoryResponse{
		Directory: s.fileSystem.CurrentDirectory(),
		Entries:   s.fileSystem.List(),
	}
}
