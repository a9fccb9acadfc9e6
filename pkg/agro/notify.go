package agro

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

func (a *Agro) sendMessage(ctx context.Context, userID uint, message, language string, includeVoice bool) (*SendResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroNotify),
	)

	user, err := a.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.WhatsAppEnabled {
		return nil, common.ValidationError("WhatsApp notifications disabled for this user")
	}

	receipt, err := a.Transport.SendText(ctx, user.PhoneNumber, message)
	if err != nil {
		return nil, common.UnavailableError("failed to send WhatsApp message", err)
	}

	logger.Info("Message sent",
		zap.Uint("user_id", userID),
		zap.String("message_sid", receipt.SID))

	var voicePath, voiceURL string
	if includeVoice {
		voicePath, err = a.Speech.Synthesize(ctx, message, language, userID)
		if err != nil {
			return nil, err
		}

		voiceURL = a.PublicBaseURL + "/uploads/voice/" + filepath.Base(voicePath)
		if _, err := a.Transport.SendMedia(ctx, user.PhoneNumber, voiceURL); err != nil {
			return nil, common.UnavailableError("failed to send voice message", err)
		}

		logger.Info("Voice message sent",
			zap.Uint("user_id", userID),
			zap.String("voice_url", voiceURL))
	}

	now := time.Now().UTC()
	record := models.Advisory{
		UserID:         userID,
		Title:          "WhatsApp Advisory",
		Content:        message,
		AdvisoryType:   models.AdvisoryTypeWhatsApp,
		Language:       language,
		VoiceFilePath:  voicePath,
		WhatsAppSent:   true,
		WhatsAppSentAt: &now,
	}
	if err := a.Db.Conn.Create(&record).Error; err != nil {
		return nil, err
	}

	return &SendResult{
		MessageSID: receipt.SID,
		VoiceURL:   voiceURL,
		Delivered:  true,
	}, nil
}

func (a *Agro) sendVoice(ctx context.Context, userID uint, text, language string) (*SendResult, error) {
	user, err := a.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	voicePath, err := a.Speech.Synthesize(ctx, text, language, userID)
	if err != nil {
		return nil, err
	}

	voiceURL := a.PublicBaseURL + "/uploads/voice/" + filepath.Base(voicePath)
	receipt, err := a.Transport.SendMedia(ctx, user.PhoneNumber, voiceURL)
	if err != nil {
		return nil, common.UnavailableError("failed to send voice message", err)
	}

	return &SendResult{
		MessageSID: receipt.SID,
		VoiceURL:   voiceURL,
		Delivered:  true,
	}, nil
}

func (a *Agro) broadcast(ctx context.Context, message, language string, userIDs []uint) (*BroadcastResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroNotify),
	)

	query := a.Db.Conn.Where("whats_app_enabled = ? AND is_active = ?", true, true)
	if len(userIDs) > 0 {
		query = query.Where("id IN ?", userIDs)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	result := &BroadcastResult{
		TotalUsers: len(users),
		Results:    []RecipientResult{},
	}

	now := time.Now().UTC()
	for _, user := range users {
		receipt, err := a.Transport.SendText(ctx, user.PhoneNumber, message)
		if err != nil {
			// isolate the failure; the rest of the batch still goes out
			logger.Warn("Broadcast send failed",
				zap.Uint("user_id", user.ID),
				zap.Error(err))

			result.Failed++
			result.Results = append(result.Results, RecipientResult{
				UserID: user.ID,
				Phone:  user.PhoneNumber,
				Status: "failed",
				Error:  err.Error(),
			})
			continue
		}

		result.Successful++
		result.Results = append(result.Results, RecipientResult{
			UserID:     user.ID,
			Phone:      user.PhoneNumber,
			Status:     "sent",
			MessageSID: receipt.SID,
		})

		record := models.Advisory{
			UserID:         user.ID,
			Title:          "Broadcast Advisory",
			Content:        message,
			AdvisoryType:   models.AdvisoryTypeBroadcast,
			Language:       language,
			WhatsAppSent:   true,
			WhatsAppSentAt: &now,
		}
		if err := a.Db.Conn.Create(&record).Error; err != nil {
			logger.Warn("Failed to save broadcast advisory",
				zap.Uint("user_id", user.ID),
				zap.Error(err))
		}
	}

	logger.Info("Broadcast completed",
		zap.Int("total", result.TotalUsers),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))

	return result, nil
}

func (a *Agro) messageStatus(ctx context.Context, sid string) (*whatsapp.MessageStatus, error) {
	status, err := a.Transport.Status(ctx, sid)
	if err != nil {
		return nil, common.UnavailableError("failed to get message status", err)
	}
	return status, nil
}

type INotifyImpl struct {
	agro *Agro
}

func (in *INotifyImpl) SendMessage(ctx context.Context, userID uint, message, language string, includeVoice bool) (*SendResult, error) {
	return in.agro.sendMessage(ctx, userID, message, language, includeVoice)
}

func (in *INotifyImpl) SendVoice(ctx context.Context, userID uint, text, language string) (*SendResult, error) {
	return in.agro.sendVoice(ctx, userID, text, language)
}

func (in *INotifyImpl) Broadcast(ctx context.Context, message, language string, userIDs []uint) (*BroadcastResult, error) {
	return in.agro.broadcast(ctx, message, language, userIDs)
}

func (in *INotifyImpl) MessageStatus(ctx context.Context, sid string) (*whatsapp.MessageStatus, error) {
	return in.agro.messageStatus(ctx, sid)
}

func (a *Agro) GetINotify() INotify {
	return &INotifyImpl{agro: a}
}
