package handlers

import (
	"context"
	"errors"
	"net/http"

	"gauntlet-service/internal/models"
	"gauntlet-service/internal/service"

	"github.com/gin-gonic/gin"
)

type GauntletHandler struct {
	Service *service.GauntletService
}

func NewGauntletHandler(s *service.GauntletService) *GauntletHandler {
	return &GauntletHandler{Service: s}
}

// statusFromErr maps the service sentinels onto HTTP statuses.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoQuestions):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotAuthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrSessionOver),
		errors.Is(err, service.ErrStaleQuestion),
		errors.Is(err, service.ErrNoWeakness):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return "", false
	}
	return id, true
}

// ListSubjects returns the subjects the question bank covers.
func (h *GauntletHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.Service.Subjects(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

// StartSession opens a new gauntlet run.
func (h *GauntletHandler) StartSession(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		Subject    string `json:"subject" binding:"required"`
		Difficulty string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	res, err := h.Service.StartSession(context.Background(), uid, req.Subject, models.Difficulty(req.Difficulty))
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SubmitAnswer grades an answer for the session's current question.
func (h *GauntletHandler) SubmitAnswer(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Answer     string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	res, err := h.Service.SubmitAnswer(context.Background(), uid, c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleTimeout resolves an expired question as a miss.
func (h *GauntletHandler) HandleTimeout(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	res, err := h.Service.HandleTimeout(context.Background(), uid, c.Param("id"), req.QuestionID)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// QuitSession ends the session on the player's request.
func (h *GauntletHandler) QuitSession(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	res, err := h.Service.QuitSession(context.Background(), uid, c.Param("id"))
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// StartWeaknessDrill opens a session aimed at the user's weakest bucket.
func (h *GauntletHandler) StartWeaknessDrill(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	res, err := h.Service.StartWeaknessDrill(context.Background(), uid)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}
