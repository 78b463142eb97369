package handler

import (
	"log/slog"
	"net/http"

	"github.com/anhtong/guild-api/internal/middleware"
	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// EventsHandler handles event endpoints
type EventsHandler struct {
	events *service.EventsService
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(events *service.EventsService) *EventsHandler {
	return &EventsHandler{events: events}
}

// Create handles POST /events/create
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)

	event, err := h.events.CreateEvent(r.Context(), actor.Region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Event created",
		"event":   event,
	})
}

// CreateWeekly handles POST /events/create-weekly.
// Answers 201 when the week's event was created and 200 when it already existed.
func (h *EventsHandler) CreateWeekly(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)

	result, err := h.events.CreateWeeklyEvent(r.Context(), actor.Region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	status := http.StatusCreated
	message := "Weekly event created"
	if !result.Created {
		status = http.StatusOK
		message = "Event already exists for this week"
	}

	WriteJSON(w, status, map[string]interface{}{
		"message": message,
		"created": result.Created,
		"event":   result.Event,
	})
}

// AutoCreateWeekly handles POST /events/auto-create-weekly.
// Public trigger for the weekly creation of both regions; failures are
// logged and reported as a generic 500 so the caller learns nothing about
// internals.
func (h *EventsHandler) AutoCreateWeekly(w http.ResponseWriter, r *http.Request) {
	results, err := h.events.AutoCreateWeekly(r.Context())
	if err != nil {
		slog.Error("auto-create weekly events failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		WriteError(w, model.NewInternalError("failed to create weekly events"))
		return
	}

	WriteJSON(w, http.StatusOK, results)
}

// List handles GET /events. An optional ?region= overrides the caller's region.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	region := actorFrom(r).Region
	if raw := r.URL.Query().Get("region"); raw != "" {
		parsed, ok := model.ParseRegion(raw)
		if !ok {
			WriteError(w, model.NewBadRequestError("region must be 'vn' or 'na'"))
			return
		}
		region = parsed
	}

	events, err := h.events.ListEvents(r.Context(), region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, events)
}

// Current handles GET /events/current using the caller's region.
func (h *EventsHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.writeLatest(w, r, actorFrom(r).Region)
}

// CurrentByRegion handles GET /events/current/{region}, the public
// variant used by the Discord bot.
func (h *EventsHandler) CurrentByRegion(w http.ResponseWriter, r *http.Request) {
	region, ok := model.ParseRegion(r.PathValue("region"))
	if !ok {
		WriteError(w, model.NewBadRequestError("region must be 'vn' or 'na'"))
		return
	}
	h.writeLatest(w, r, region)
}

func (h *EventsHandler) writeLatest(w http.ResponseWriter, r *http.Request, region model.Region) {
	event, err := h.events.LatestEvent(r.Context(), region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

// Get handles GET /events/{id}
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, event)
}
