package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

type SendRequest struct {
	UserID       int    `json:"user_id"`
	Message      string `json:"message"`
	Language     string `json:"language"`
	IncludeVoice bool   `json:"include_voice"`
}

var sendRequestSchema = z.Struct(z.Shape{
	"UserID":       z.Int().Required(),
	"Message":      z.String().Required(),
	"Language":     z.String(),
	"IncludeVoice": z.Bool(),
})

func (rs *RestfulServer) SendMessage(c *gin.Context) {
	var req SendRequest
	if err := sendRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	if !rs.CheckRecipientLimiter(strconv.Itoa(req.UserID)) {
		respondRateLimited(c)
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	result, err := rs.Agro.Notify.SendMessage(c.Request.Context(), uint(req.UserID), req.Message, language, req.IncludeVoice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message_sid": result.MessageSID,
		"voice_url":   result.VoiceURL,
		"delivered":   result.Delivered,
	})
}

type VoiceRequest struct {
	UserID   int    `json:"user_id"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

var voiceRequestSchema = z.Struct(z.Shape{
	"UserID":   z.Int().Required(),
	"Text":     z.String().Required(),
	"Language": z.String(),
})

func (rs *RestfulServer) SendVoice(c *gin.Context) {
	var req VoiceRequest
	if err := voiceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	if !rs.CheckRecipientLimiter(strconv.Itoa(req.UserID)) {
		respondRateLimited(c)
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	result, err := rs.Agro.Notify.SendVoice(c.Request.Context(), uint(req.UserID), req.Text, language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message_sid": result.MessageSID,
		"voice_url":   result.VoiceURL,
		"delivered":   result.Delivered,
	})
}

type BroadcastRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	UserIDs  []int  `json:"user_ids"`
}

var broadcastRequestSchema = z.Struct(z.Shape{
	"Message":  z.String().Required(),
	"Language": z.String(),
	"UserIDs":  z.Slice(z.Int()),
})

func (rs *RestfulServer) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := broadcastRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	userIDs := common.Mapper(req.UserIDs, func(id int) uint { return uint(id) })

	result, err := rs.Agro.Notify.Broadcast(c.Request.Context(), req.Message, language, userIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"total_users": result.TotalUsers,
		"successful":  result.Successful,
		"failed":      result.Failed,
		"results":     result.Results,
	})
}

// Webhook answers Twilio's form-encoded inbound message callback with TwiML.
// Twilio retries non-2xx responses, so even a malformed payload gets a 200
// carrying the error reply.
func (rs *RestfulServer) Webhook(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Data(http.StatusOK, "application/xml", []byte(whatsapp.ErrorReply()))
		return
	}
	body := c.PostForm("Body")
	c.Data(http.StatusOK, "application/xml", []byte(whatsapp.ReplyFor(body)))
}

func (rs *RestfulServer) MessageStatus(c *gin.Context) {
	status, err := rs.Agro.Notify.MessageStatus(c.Request.Context(), c.Param("message_sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message_status": status})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	rs.SetLimiter(c.Param("user_id"), req.Rate, req.Burst)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
