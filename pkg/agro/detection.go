package agro

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
)

func (a *Agro) detectDisease(ctx context.Context, userID uint, filename string, image []byte, cropType string) (*DetectionRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroDisease),
	)

	meta, err := classifier.ValidateImage(image)
	if err != nil {
		return nil, err
	}

	result, err := a.Detector.Detect(ctx, image, cropType, meta)
	if err != nil {
		return nil, err
	}

	logger.Info("Disease detection completed",
		zap.Uint("user_id", userID),
		zap.String("crop_type", result.CropType),
		zap.String("disease", result.Disease),
		zap.Float64("confidence", result.Confidence))

	// store under a uuid-prefixed base name so client-supplied paths can
	// neither escape the upload dir nor overwrite each other
	storedName := uuid.NewString()[:8] + "_" + filepath.Base(filename)
	filePath := filepath.Join(a.UploadDir, storedName)
	if writeErr := os.WriteFile(filePath, image, 0o644); writeErr != nil {
		// detection still succeeded; record the row without the stored file
		logger.Warn("Failed to store uploaded image", zap.Error(writeErr))
		filePath = ""
	}

	record := models.CropImage{
		UserID:           userID,
		Filename:         filename,
		FilePath:         filePath,
		FileSize:         meta.FileSize,
		PredictedDisease: result.Disease,
		ConfidenceScore:  result.Confidence,
		IsDiseased:       result.IsDiseased,
		CropType:         result.CropType,
		ImageQuality:     result.ImageQuality,
		Processed:        true,
	}

	if err := a.Db.Conn.Create(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Detection saved", zap.Uint("image_id", record.ID))

	return &DetectionRecord{
		ImageID:         record.ID,
		Result:          result,
		DiseaseInfo:     classifier.Lookup(result.CropType, result.Disease),
		Recommendations: classifier.TreatmentRecommendations(result.Disease, result.IsDiseased),
	}, nil
}

func (a *Agro) detectionHistory(userID uint, limit int) ([]models.CropImage, error) {
	if limit <= 0 {
		limit = 10
	}

	var images []models.CropImage
	err := a.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&images).Error
	return images, err
}

type IDetectionImpl struct {
	agro *Agro
}

func (id *IDetectionImpl) DetectDisease(ctx context.Context, userID uint, filename string, image []byte, cropType string) (*DetectionRecord, error) {
	return id.agro.detectDisease(ctx, userID, filename, image, cropType)
}

func (id *IDetectionImpl) DetectionHistory(userID uint, limit int) ([]models.CropImage, error) {
	return id.agro.detectionHistory(userID, limit)
}

func (a *Agro) GetIDetection() IDetection {
	return &IDetectionImpl{agro: a}
}
