package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/services"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	"github.com/gin-gonic/gin"
)

// SurveySubmitter lets tests drive the controller with a fake service.
type SurveySubmitter interface {
	Submit(ctx context.Context, userID uint, input utils.SurveyInput) (*services.SurveyResult, error)
}

type SurveyController struct {
	Svc     SurveySubmitter
	History *services.HistoryService
}

func NewSurveyController(svc SurveySubmitter, history *services.HistoryService) *SurveyController {
	return &SurveyController{Svc: svc, History: history}
}

// POST /survey/result
func (sc *SurveyController) SubmitSurvey(c *gin.Context) {
	uid := c.GetUint("userID")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input utils.SurveyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid survey payload", "detail": err.Error()})
		return
	}

	result, err := sc.Svc.Submit(c.Request.Context(), uid, input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error calculating score", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /survey/history
func (sc *SurveyController) GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := sc.History.History(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"surveys": entries})
}

// GET /survey/summary
func (sc *SurveyController) GetSummary(c *gin.Context) {
	uid := c.GetUint("userID")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	summary, err := sc.History.Summary(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
