package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pin-diary/api-go/config"
	"github.com/pin-diary/api-go/utils"
)

// UploadController hands out presigned PUT URLs against the R2 bucket. The
// post core never touches the bucket; it only stores the resulting URIs.
type UploadController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

type MultiplePresignedURLRequest struct {
	Files []PresignedURLRequest `json:"files" binding:"required,dive"`
}

func NewUploadController() *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetPresignedURL godoc
// @Summary Presigned upload URL
// @Description Returns a presigned PUT URL for one photo upload
// @Tags uploads
// @Accept json
// @Produce json
// @Param file body PresignedURLRequest true "Upload request"
// @Success 200 {object} PresignedURLResponse
// @Router /upload/presigned-url [post]
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isValidPhotoType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		return
	}
	if !isValidPhotoSize(req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := generateFileKey(user.UserID, req.FileName)
	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, PresignedURLResponse{
		UploadURL: presignedURL,
		FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
		Key:       key,
		ExpiresIn: 3600,
	})
}

// GetMultiplePresignedURLs godoc
// @Summary Presigned upload URLs for a photo set
// @Description Returns presigned PUT URLs for up to 10 photos of one post
// @Tags uploads
// @Accept json
// @Produce json
// @Param files body MultiplePresignedURLRequest true "Upload requests"
// @Success 200 {array} PresignedURLResponse
// @Router /upload/multiple-presigned-urls [post]
func (uc *UploadController) GetMultiplePresignedURLs(c *gin.Context) {
	user := utils.GetUser(c)
	var req MultiplePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Files) > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 10 files allowed per upload"})
		return
	}

	responses := make([]PresignedURLResponse, 0, len(req.Files))
	for _, fileReq := range req.Files {
		if !isValidPhotoType(fileReq.ContentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid file type for %s", fileReq.FileName)})
			return
		}
		if !isValidPhotoSize(fileReq.FileSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File size exceeds limit for %s", fileReq.FileName)})
			return
		}

		key := generateFileKey(user.UserID, fileReq.FileName)
		presignedURL, err := uc.createPresignedURL(key, fileReq.ContentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload URL for %s", fileReq.FileName)})
			return
		}

		responses = append(responses, PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		})
	}

	c.JSON(http.StatusOK, responses)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func isValidPhotoType(contentType string) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic",
	}
	for _, validType := range validTypes {
		if contentType == validType {
			return true
		}
	}
	return false
}

func isValidPhotoSize(fileSize int64) bool {
	const limit = 10 * 1024 * 1024 // 10MB
	return fileSize > 0 && fileSize <= limit
}

func generateFileKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("images/%d/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}
