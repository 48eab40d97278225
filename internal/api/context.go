package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namuapp/receitas-api/internal/observability"
	"github.com/namuapp/receitas-api/internal/service"
)

// ContextHandler serves the single-slot context handoff: one client posts a
// context document, another fetches it exactly once.
type ContextHandler struct {
	contexts *service.ContextService
	metrics  *observability.Metrics
}

func NewContextHandler(contexts *service.ContextService, metrics *observability.Metrics) *ContextHandler {
	return &ContextHandler{contexts: contexts, metrics: metrics}
}

func (h *ContextHandler) RegisterRoutes(router *gin.Engine) {
	ctx := router.Group("/contexto")
	{
		ctx.POST("/enviar", h.Send)
		ctx.GET("/pegar", h.Take)
	}
}

// Send stores the request body as the pending context, replacing any
// unconsumed one. The body is arbitrary JSON; only missing or empty
// documents are rejected.
func (h *ContextHandler) Send(c *gin.Context) {
	var blob interface{}
	if err := c.ShouldBindJSON(&blob); err != nil || emptyContext(blob) {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
		return
	}

	if h.contexts.Send(blob) {
		h.metrics.ContextOverwrites.Inc()
	}
	h.metrics.ContextSends.Inc()
	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Contexto salvo no servidor",
	})
}

// Take returns the pending context and removes it, so a second call fails
// until something is sent again.
func (h *ContextHandler) Take(c *gin.Context) {
	blob, err := h.contexts.Take()
	if err != nil {
		if errors.Is(err, service.ErrNoContext) {
			h.metrics.ContextTakes.WithLabelValues("miss").Inc()
			c.JSON(http.StatusNotFound, gin.H{"erro": "Nenhum contexto disponível"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao recuperar contexto"})
		return
	}

	h.metrics.ContextTakes.WithLabelValues("hit").Inc()
	c.JSON(http.StatusOK, gin.H{
		"sucesso": true,
		"dados":   blob,
	})
}

// emptyContext reports whether a decoded JSON document carries no content:
// null, an empty object or array, an empty string, zero or false. These are
// the bodies the API has always refused to store.
func emptyContext(blob interface{}) bool {
	switch v := blob.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	default:
		return false
	}
}
