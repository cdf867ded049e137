package api

import (
	"net/http"

	"cart-recovery/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RestoreHandler struct {
	restore commands.RestoreCommands
}

func NewRestoreHandler(restore commands.RestoreCommands) *RestoreHandler {
	return &RestoreHandler{restore: restore}
}

// Restore handles the signed link from recovery emails. The response is
// always a bare 302: success goes to cart or checkout per settings, every
// failure goes to the generic cart page with no distinguishing signal.
func (h *RestoreHandler) Restore(c *gin.Context) {
	token := c.Query("token")
	key := c.Query("key")

	result := h.restore.Restore(c.Request.Context(), token, key)
	c.Redirect(http.StatusFound, result.RedirectURL)
}
