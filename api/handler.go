package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"os-simulator/config"
	"os-simulator/internal/core"
	"os-simulator/internal/filesystem"
	"os-simulator/internal/memory"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	RegisterProcess(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
}

type MemoryHandler interface {
	LoadMemory(ctx *fiber.Ctx) error
	ReplaceMemory(ctx *fiber.Ctx) error
	UnloadMemory(ctx *fiber.Ctx) error
	MemoryState(ctx *fiber.Ctx) error
}

type FileSystemHandler interface {
	ListDirectory(ctx *fiber.Ctx) error
	MakeDirectory(ctx *fiber.Ctx) error
	CreateFile(ctx *fiber.Ctx) error
	ReadFile(ctx *fiber.Ctx) error
	WriteFile(ctx *fiber.Ctx) error
	RemoveEntry(ctx *fiber.Ctx) error
}

var (
	_ SchedulerHandler  = (*SchedulerHandlerImpl)(nil)
	_ MemoryHandler     = (*SchedulerHandlerImpl)(nil)
	_ FileSystemHandler = (*SchedulerHandlerImpl)(nil)
)

type SchedulerHandlerImpl struct {
	config     *config.SimulatorConfig
	registry   *core.Registry
	memory     *memory.Manager
	fileSystem *filesystem.FileSystem
}

func NewSchedulerHandlerImpl(config *config.SimulatorConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:     config,
		registry:   core.NewRegistry(),
		memory:     memory.NewManager(config.MemoryFrames, config.PageSize),
		fileSystem: filesystem.New(),
	}
}

func (s *SchedulerHandlerImpl) RegisterProcess(ctx *fiber.Ctx) error {
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return invalidRequest(ctx, err)
	}
	if err := s.registry.Register(job.ProcessId, job.BurstTime, job.Priority); err != nil {
		return writeError(ctx, err)
	}
	slog.Info("process registered", "pid", job.ProcessId, "burst", job.BurstTime, "priority", job.Priority)
	return ctx.Status(fiber.StatusCreated).JSON(responses.ProcessesResponse{Processes: s.registry.Snapshot()})
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.ProcessesResponse{Processes: s.registry.Snapshot()})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	report, err := schedulers.ScheduleFirstComeFirstServe(s.registry)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(report.Response())
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	report, err := schedulers.ScheduleShortestJobFirst(s.registry)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(report.Response())
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	timeQuantum, err := s.queryQuantum(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	report, err := schedulers.ScheduleRoundRobin(s.registry, timeQuantum)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(report.Response())
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	timeQuantum, err := s.queryQuantum(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	reports, err := schedulers.ScheduleAll(s.registry, timeQuantum)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(toResponses(reports))
}

// Schedule runs an algorithm over the jobs in the request body without
// touching the server registry.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx, err)
	}

	registry := core.NewRegistry()
	for _, job := range request.Jobs {
		if err := registry.Register(job.ProcessId, job.BurstTime, job.Priority); err != nil {
			return writeError(ctx, err)
		}
	}

	timeQuantum := s.config.RoundRobinTimeQuantum
	if request.Quantum != nil {
		timeQuantum = *request.Quantum
	}

	algorithm := ctx.Params("algorithm")
	if strings.EqualFold(algorithm, "all") {
		reports, err := schedulers.ScheduleAll(registry, timeQuantum)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(toResponses(reports))
	}

	report, err := schedulers.Schedule(registry, algorithm, timeQuantum)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(report.Response())
}

func (s *SchedulerHandlerImpl) queryQuantum(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Query("quantum")
	if raw == "" {
		return s.config.RoundRobinTimeQuantum, nil
	}
	timeQuantum, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", core.ErrInvalidQuantum, raw)
	}
	return timeQuantum, nil
}

func toResponses(reports []schedulers.Report) []responses.ScheduleResponse {
	out := make([]responses.ScheduleResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, report.Response())
	}
	return out
}

func invalidRequest(ctx *fiber.Ctx, err error) error {
	slog.Warn("invalid request format", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	slog.Warn("request rejected", "path", ctx.Path(), "status", status, "error", err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidBurstTime),
		errors.Is(err, core.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm),
		errors.Is(err, memory.ErrInvalidSize),
		errors.Is(err, memory.ErrInvalidProcess),
		errors.Is(err, filesystem.ErrInvalidName),
		errors.Is(err, filesystem.ErrIsDirectory):
		return fiber.StatusBadRequest
	case errors.Is(err, core.ErrEmptyRegistry):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, filesystem.ErrNotFound),
		errors.Is(err, memory.ErrNotLoaded):
		return fiber.StatusNotFound
	case errors.Is(err, filesystem.ErrExists),
		errors.Is(err, memory.ErrAlreadyLoaded):
		return fiber.StatusConflict
	case errors.Is(err, memory.ErrInsufficientMemory):
		return fiber.StatusInsufficientStorage
	default:
		return fiber.StatusInternalServerError
	}
}
