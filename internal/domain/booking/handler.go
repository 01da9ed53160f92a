package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/odonto/agenda/internal/platform/auth"
	"github.com/odonto/agenda/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "dentist", "reception"))
	g.GET("/appointments", h.ListAppointments)
	g.POST("/appointments", h.CreateAppointment)
	g.GET("/appointments/:id", h.GetAppointment)
	g.PUT("/appointments/:id", h.RescheduleAppointment)
	g.DELETE("/appointments/:id", h.DeleteAppointment)
	g.POST("/appointments/:id/cancel", h.CancelAppointment)
	g.POST("/appointments/:id/confirm", h.ConfirmAppointment)
	g.POST("/appointments/:id/complete", h.CompleteAppointment)
	g.POST("/appointments/:id/no-show", h.NoShowAppointment)
	g.GET("/availability", h.CheckAvailability)
}

type availabilityQuery struct {
	ProfessionalID  uuid.UUID `query:"professional_id" validate:"required"`
	StartAt         time.Time `query:"start_at" validate:"required"`
	DurationMinutes int       `query:"duration_minutes" validate:"required,gt=0"`
	ExcludeID       uuid.UUID `query:"exclude_id"`
}

type availabilityResponse struct {
	Available    bool         `json:"available"`
	ConflictType ConflictType `json:"conflict_type"`
	With         *Appointment `json:"conflicting_appointment,omitempty"`
	Overlap      *Window      `json:"overlap,omitempty"`
}

func (h *Handler) CheckAvailability(c echo.Context) error {
	var q availabilityQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&q); err != nil {
		return err
	}
	res, err := h.svc.CheckAvailability(c.Request().Context(), q.ProfessionalID, q.StartAt, q.DurationMinutes, q.ExcludeID)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, availabilityResponse{
		Available:    !res.HasConflict,
		ConflictType: res.Type,
		With:         res.With,
		Overlap:      res.Overlap,
	})
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	if contactID := c.QueryParam("contact_id"); contactID != "" {
		cid, err := uuid.Parse(contactID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid contact_id")
		}
		pg := pagination.FromContext(c)
		items, total, err := h.svc.ListByContact(c.Request().Context(), cid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}

	pid, err := uuid.Parse(c.QueryParam("professional_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "professional_id or contact_id is required")
	}
	from, to, err := parseRange(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	items, err := h.svc.ListAgenda(c.Request().Context(), pid, from, to)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

type rescheduleRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
}

func (h *Handler) RescheduleAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	a, err := h.svc.Reschedule(c.Request().Context(), id, req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

type cancelRequest struct {
	By CancelledBy `json:"by"`
}

func (h *Handler) CancelAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Cancel(c.Request().Context(), id, req.By)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ConfirmAppointment(c echo.Context) error {
	return h.transition(c, h.svc.Confirm)
}

func (h *Handler) CompleteAppointment(c echo.Context) error {
	return h.transition(c, h.svc.MarkCompleted)
}

func (h *Handler) NoShowAppointment(c echo.Context) error {
	return h.transition(c, h.svc.MarkNoShow)
}

func (h *Handler) transition(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*Appointment, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := fn(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) mapError(c echo.Context, err error) error {
	var cerr *ConflictError
	if errors.As(err, &cerr) {
		return c.JSON(http.StatusConflict, availabilityResponse{
			Available:    false,
			ConflictType: cerr.Result.Type,
			With:         cerr.Result.With,
			Overlap:      cerr.Result.Overlap,
		})
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func parseRange(c echo.Context) (time.Time, time.Time, error) {
	const day = 24 * time.Hour
	now := time.Now().Truncate(day)
	from, to := now, now.Add(7*day)
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from")
		}
		from = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to")
		}
		to = t
	}
	return from, to, nil
}
