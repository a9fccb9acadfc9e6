package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": "Agro Advisory Service",
		"version": "1.0.0",
	})
}

// parseCoordinates pulls latitude/longitude from the query string; both are
// required for every weather route.
func parseCoordinates(c *gin.Context) (float64, float64, error) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return 0, 0, common.ValidationError("latitude is required and must be a number")
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return 0, 0, common.ValidationError("longitude is required and must be a number")
	}
	return latitude, longitude, nil
}

func (rs *RestfulServer) CurrentWeather(c *gin.Context) {
	latitude, longitude, err := parseCoordinates(c)
	if err != nil {
		respondError(c, err)
		return
	}

	snapshot, source, err := rs.Agro.Weather.CurrentWeather(c.Request.Context(), latitude, longitude, c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"weather_data": snapshot,
		"data_source":  source,
	})
}

func (rs *RestfulServer) ForecastWeather(c *gin.Context) {
	latitude, longitude, err := parseCoordinates(c)
	if err != nil {
		respondError(c, err)
		return
	}

	days := 3
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, common.ValidationError("days must be a number"))
			return
		}
	}

	forecast, err := rs.Agro.Weather.ForecastWeather(c.Request.Context(), latitude, longitude, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"forecast": forecast,
	})
}

func (rs *RestfulServer) WeatherAdvisory(c *gin.Context) {
	latitude, longitude, err := parseCoordinates(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cropType := c.Query("crop_type")
	if cropType == "" {
		cropType = "rice"
	}

	result, err := rs.Agro.Advisory.WeatherAdvisory(c.Request.Context(), latitude, longitude, cropType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"advisory_id":  result.ID,
		"advisory":     result.Advisory,
		"weather_data": result.Weather,
		"data_source":  result.Source,
		"crop_type":    result.CropType,
	})
}

type UserRequest struct {
	PhoneNumber string   `json:"phone_number"`
	Name        string   `json:"name"`
	Language    string   `json:"language"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	CropTypes   []string `json:"crop_types"`
}

var userRequestSchema = z.Struct(z.Shape{
	"PhoneNumber": z.String().Required(),
	"Name":        z.String().Required(),
	"Language":    z.String(),
	"Location":    z.String(),
	"Latitude":    z.Float64(),
	"Longitude":   z.Float64(),
	"CropTypes":   z.Slice(z.String()),
})

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := userRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	cropTypes := ""
	if len(req.CropTypes) > 0 {
		if out, err := json.Marshal(req.CropTypes); err == nil {
			cropTypes = string(out)
		}
	}

	user, err := rs.Agro.User.CreateUser(&models.User{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Language:    req.Language,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CropTypes:   cropTypes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// parseUserID reads the :user_id path param.
func parseUserID(c *gin.Context) (uint, error) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, common.ValidationError("user_id must be a positive integer")
	}
	return uint(userID), nil
}

func (rs *RestfulServer) GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := rs.Agro.User.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (rs *RestfulServer) UserAdvisories(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	advisories, err := rs.Agro.Advisory.UserAdvisories(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"advisories": advisories,
		"count":      len(advisories),
	})
}

type MarketRequest struct {
	CropName      string  `json:"crop_name"`
	CropVariety   string  `json:"crop_variety"`
	MarketName    string  `json:"market_name"`
	District      string  `json:"district"`
	State         string  `json:"state"`
	CurrentPrice  float64 `json:"current_price"`
	PriceUnit     string  `json:"price_unit"`
	PreviousPrice float64 `json:"previous_price"`
	Demand        string  `json:"demand"`
	Supply        string  `json:"supply"`
	MarketTrend   string  `json:"market_trend"`
}

var marketRequestSchema = z.Struct(z.Shape{
	"CropName":      z.String().Required(),
	"CropVariety":   z.String(),
	"MarketName":    z.String().Required(),
	"District":      z.String(),
	"State":         z.String(),
	"CurrentPrice":  z.Float64().Required(),
	"PriceUnit":     z.String(),
	"PreviousPrice": z.Float64(),
	"Demand":        z.String(),
	"Supply":        z.String(),
	"MarketTrend":   z.String(),
})

func (rs *RestfulServer) RecordPrice(c *gin.Context) {
	var req MarketRequest
	if err := marketRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	record, err := rs.Agro.Market.RecordPrice(&models.MarketData{
		CropName:      req.CropName,
		CropVariety:   req.CropVariety,
		MarketName:    req.MarketName,
		District:      req.District,
		State:         req.State,
		CurrentPrice:  req.CurrentPrice,
		PriceUnit:     req.PriceUnit,
		PreviousPrice: req.PreviousPrice,
		Demand:        req.Demand,
		Supply:        req.Supply,
		MarketTrend:   req.MarketTrend,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "market_data": record})
}

func (rs *RestfulServer) ListPrices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	prices, err := rs.Agro.Market.ListPrices(c.Query("crop"), c.Query("state"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"prices":  prices,
		"count":   len(prices),
	})
}
