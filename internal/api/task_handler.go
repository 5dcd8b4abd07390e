package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jvasquezan/tareas-api/internal/api/shared"
	"github.com/jvasquezan/tareas-api/internal/domain"
	"github.com/jvasquezan/tareas-api/internal/platform/logger"
	"github.com/jvasquezan/tareas-api/internal/store"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// getPathID extracts the integer id from the URL path.
func getPathID(r *http.Request) (int64, error) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		return 0, domain.ErrInvalidID
	}

	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	return id, nil
}

// Create handles POST /api/tareas.
// The fields are inserted as supplied; there is no required-field rule.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Formato de solicitud inválido")
		return
	}

	task := taskFromRequest(&req)
	if err := h.taskStore.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al crear la tarea", err)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		ID:      task.ID,
		Mensaje: "Tarea creada exitosamente",
	})
}

// List handles GET /api/tareas.
// Every row is returned in store-native order; no pagination.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.GetAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al obtener las tareas", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetByID handles GET /api/tareas/{id}.
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid task id in path", slog.String("value", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "ID inválido")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err),
				ErrorCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al obtener la tarea", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /api/tareas/{id}.
// All six mutable fields are replaced with the request values.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid task id in path", slog.String("value", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "ID inválido")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Formato de solicitud inválido")
		return
	}

	task := taskFromRequest(&req)
	task.ID = id

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err),
				ErrorCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al actualizar la tarea", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Mensaje: "Tarea actualizada exitosamente",
	})
}

// Delete handles DELETE /api/tareas/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid task id in path", slog.String("value", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "ID inválido")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err),
				ErrorCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al eliminar la tarea", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Mensaje: "Tarea eliminada exitosamente",
	})
}

// taskFromRequest maps the request DTO onto a domain Task.
func taskFromRequest(req *TaskRequest) *domain.Task {
	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
	}
}
