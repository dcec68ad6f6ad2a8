package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dkoroteev/telegpt/internal/messages"
	"github.com/dkoroteev/telegpt/internal/user"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	userService    user.Service
	messageService messages.Service
	log            *logger.ZapLogger
}

func NewHandler(
	userSvc user.Service,
	messageSvc messages.Service,
	log *logger.ZapLogger,
) *Handler {
	return &Handler{
		userService:    userSvc,
		messageService: messageSvc,
		log:            log,
	}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.userService.ListAll(r.Context())
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "list users: " + err.Error(),
			Service: "telegpt",
		})
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

func (h *Handler) GetUserMessages(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "telegram_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid telegram_id", http.StatusBadRequest)
		return
	}

	items, err := h.messageService.ListByUser(r.Context(), id)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "list messages: " + err.Error(),
			Service: "telegpt",
		})
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}
