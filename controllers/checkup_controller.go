package controllers

import (
	"net/http"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/services"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	"github.com/gin-gonic/gin"
)

type CheckupController struct {
	Svc *services.CheckupService
}

func NewCheckupController(svc *services.CheckupService) *CheckupController {
	return &CheckupController{Svc: svc}
}

type CheckupUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /survey/checkup-image
// Stores the photographed checkup report and returns the text lines found on
// it, so the app can prefill the lab-value fields before submission.
func (cc *CheckupController) UploadCheckupImage(c *gin.Context) {
	email := c.GetString("email")

	var req CheckupUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadCheckupImage(req.ImageBase64, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	lines, err := cc.Svc.ExtractReportText(req.ImageBase64)
	if err != nil {
		// the upload itself succeeded; return the URL with no extracted text
		c.JSON(http.StatusOK, gin.H{"url": url, "lines": []string{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "lines": lines})
}
