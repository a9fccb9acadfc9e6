package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

func (rs *RestfulServer) DetectDisease(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, common.ValidationError("image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, common.InternalError("failed to read uploaded file", err))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(c, common.InternalError("failed to read uploaded file", err))
		return
	}

	cropType := c.PostForm("crop_type")
	if cropType == "" {
		cropType = "rice"
	}

	var userID uint
	if raw := c.PostForm("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, common.ValidationError("user_id must be a positive integer"))
			return
		}
		userID = uint(parsed)
	}

	record, err := rs.Agro.Detection.DetectDisease(c.Request.Context(), userID, fileHeader.Filename, image, cropType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"image_id":        record.ImageID,
		"detection":       record.Result,
		"disease_info":    record.DiseaseInfo,
		"recommendations": record.Recommendations,
	})
}

func (rs *RestfulServer) DetectionHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		respondError(c, common.ValidationError("user_id is required and must be a positive integer"))
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	history, err := rs.Agro.Detection.DetectionHistory(uint(userID), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": history,
		"count":   len(history),
	})
}

func (rs *RestfulServer) SupportedCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"supported_crops": classifier.SupportedCrops(),
		"disease_classes": classifier.Catalog(),
	})
}

func (rs *RestfulServer) DiseaseInfo(c *gin.Context) {
	cropType := c.Param("crop_type")
	diseaseName := c.Param("disease_name")

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"crop_type":    cropType,
		"disease_name": diseaseName,
		"disease_info": classifier.Lookup(cropType, diseaseName),
	})
}
