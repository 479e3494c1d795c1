package health

import (
	"net/http"

	"timevault/config"
	"timevault/shared/lifecycle"
	"timevault/shared/timezone"
	"timevault/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Status struct {
	Name  string `json:"name"`
	State string `json:"state"`
	Time  string `json:"time"`
}

type Handler struct {
	state  *lifecycle.State
	config *config.Config
}

func New(state *lifecycle.State, config *config.Config) Handler {
	return Handler{
		state:  state,
		config: config,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server accepts requests.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	if !handler.state.Accepting() {
		response.WithUnhealthy(writer)

		return
	}

	response.WithJSON(writer, http.StatusOK, Status{
		Name:  handler.config.App.Name,
		State: handler.state.Get().String(),
		Time:  timezone.Format(timezone.Now(), "2006-01-02T15:04:05Z07:00"),
	})
}
