package handlers

import (
	"context"
	"net/http"
	"strconv"

	"gauntlet-service/internal/cache"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 10

type LeaderboardHandler struct {
	Cache cache.LeaderboardCache
}

func NewLeaderboardHandler(c cache.LeaderboardCache) *LeaderboardHandler {
	return &LeaderboardHandler{Cache: c}
}

// GetTop returns the top ladder rows, ?limit= capped at 100.
func (h *LeaderboardHandler) GetTop(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := h.Cache.GetTop(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// GetRank returns the caller's 1-indexed ladder position, -1 when unranked.
func (h *LeaderboardHandler) GetRank(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	rank, err := h.Cache.GetRank(context.Background(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": uid, "rank": rank})
}
