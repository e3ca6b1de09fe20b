package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/presentation/templates"
)

// PreviewHandlers serves the live template preview websocket
type PreviewHandlers struct {
	registry *templates.Registry
	upgrader websocket.Upgrader
	logger   *logging.ChanneledLogger
}

// NewPreviewHandlers creates preview handlers with injected dependencies
func NewPreviewHandlers(registry *templates.Registry, logger *logging.ChanneledLogger) *PreviewHandlers {
	return &PreviewHandlers{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Preview is an editor convenience; CORS already gates the page.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

type previewRequest struct {
	TemplateID string              `json:"templateId"`
	Brand      content.BrandConfig `json:"brand"`
}

type previewFrame struct {
	HTML  string `json:"html,omitempty"`
	CSS   string `json:"css,omitempty"`
	Error string `json:"error,omitempty"`
}

// GetPreviewWS handles GET /api/v1/preview/ws. Each inbound message is
// a render request; each outbound frame is the rendered result. Render
// failures are reported in-band and keep the socket open.
func (h *PreviewHandlers) GetPreviewWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Preview().Warn("Websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	h.logger.Preview().Debug("Preview session opened", "remote", conn.RemoteAddr().String())

	for {
		var req previewRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Preview().Warn("Preview session error", "error", err.Error())
			}
			return
		}

		result, err := h.registry.RenderWithFallback(req.TemplateID, &req.Brand)
		if err != nil {
			if writeErr := conn.WriteJSON(previewFrame{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(previewFrame{HTML: result.HTML, CSS: result.CSS}); err != nil {
			return
		}
	}
}
