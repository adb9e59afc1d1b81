package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/resources"
	"github.com/mkessler/clockodo-bridge/internal/service"
	"github.com/mkessler/clockodo-bridge/internal/timeutil"
	"github.com/mkessler/clockodo-bridge/internal/tools"
)

type handlers struct {
	registry *tools.Registry
	provider *resources.Provider
	logger   *zap.Logger
}

func newHandlers(registry *tools.Registry, provider *resources.Provider, logger *zap.Logger) *handlers {
	return &handlers{registry: registry, provider: provider, logger: logger}
}

// response is the standard JSON envelope.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *handlers) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "clockodo-bridge",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (h *handlers) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, response{Success: true, Data: h.registry.List()})
}

func (h *handlers) callTool(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Error: "failed to read request body"})
		return
	}

	var params json.RawMessage
	if len(body) > 0 {
		if !json.Valid(body) {
			c.JSON(http.StatusBadRequest, response{Success: false, Error: "request body must be a JSON object"})
			return
		}
		params = body
	}

	result, err := h.registry.Call(c.Request.Context(), name, params)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Data: result})
}

func (h *handlers) getResource(c *gin.Context) {
	var (
		resource *resources.Resource
		err      error
	)

	switch c.Param("name") {
	case "current-entry":
		resource, err = h.provider.CurrentEntry(c.Request.Context())
	case "customers":
		resource, err = h.provider.Customers(c.Request.Context())
	case "services":
		resource, err = h.provider.Services(c.Request.Context())
	case "absence-types":
		resource = h.provider.AbsenceTypes()
	default:
		c.JSON(http.StatusNotFound, response{Success: false, Error: "unknown resource"})
		return
	}

	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Data: resource})
}

// writeError maps the error taxonomy onto HTTP statuses: bad input is
// the caller's fault, an unresolvable identity is 404, and a Gateway
// failure surfaces as 502 carrying the upstream detail.
func (h *handlers) writeError(c *gin.Context, err error) {
	var (
		unknownTool   *tools.UnknownToolError
		invalidParams *tools.InvalidParamsError
		invalidFormat *timeutil.InvalidFormatError
		notFound      *service.NotFoundError
		apiErr        *clockodo.APIError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &unknownTool):
		status = http.StatusNotFound
	case errors.As(err, &invalidParams), errors.As(err, &invalidFormat):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoRunningClock):
		status = http.StatusConflict
	case errors.As(err, &apiErr):
		status = http.StatusBadGateway
	}

	c.JSON(status, response{Success: false, Error: err.Error()})
}
