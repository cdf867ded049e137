package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "cart-recovery/internal/handler/dto/request"
	resdto "cart-recovery/internal/handler/dto/response"
	"cart-recovery/internal/handler/httperr"
	"cart-recovery/internal/usecase/commands"
	"cart-recovery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	track       commands.TrackCommands
	cartQueries queries.CartQueries
}

func NewCartHandler(track commands.TrackCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		track:       track,
		cartQueries: cartQueries,
	}
}

// Track is the ingestion endpoint for the external cart-tracking
// collaborator; one upsert per activity ping.
func (h *CartHandler) Track(c *gin.Context) {
	var req reqdto.TrackCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rec, err := h.track.Track(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidTrackRequest) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid track request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}

func (h *CartHandler) Stats(c *gin.Context) {
	stats, err := h.cartQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load stats", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

func (h *CartHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	items, err := h.cartQueries.Recent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load carts", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartListItems(items))
}
