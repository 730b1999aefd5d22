package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/pin-diary/api-go/config"
	"github.com/pin-diary/api-go/models"
	"github.com/pin-diary/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB          *gorm.DB
	KakaoConfig *config.KakaoConfig
}

func NewAuthController(db *gorm.DB, kakaoConfig *config.KakaoConfig) *AuthController {
	return &AuthController{
		DB:          db,
		KakaoConfig: kakaoConfig,
	}
}

type credentialsInput struct {
	Email    string `json:"email" binding:"required,email,min=6,max=50"`
	Password string `json:"password" binding:"required,min=8,max=20,alphanum"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// generateTokenPair issues an access and refresh JWT for the user and
// persists the refresh token row.
func (ac *AuthController) generateTokenPair(user *models.User) (*tokenPair, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))

	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	accessToken, err := accessTokenBase.SignedString(secret)
	if err != nil {
		return nil, err
	}

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	refreshToken, err := refreshTokenBase.SignedString(secret)
	if err != nil {
		return nil, err
	}

	row := models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(time.Hour * 24 * 30),
	}
	if err := ac.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	return &tokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	user := models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		LoginType: "email",
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (ac *AuthController) Signin(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokens, err := ac.generateTokenPair(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	// Rotate: the presented token is replaced by a fresh pair.
	ac.DB.Delete(&refreshToken)
	tokens, err := ac.generateTokenPair(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Logout succeeds whether or not the token row still exists.
	ac.DB.Where("token = ?", input.RefreshToken).Delete(&models.RefreshToken{})
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, dbUser)
}

func (ac *AuthController) EditProfile(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Nickname string `json:"nickname" binding:"required,min=2,max=20"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	dbUser.Nickname = input.Nickname
	dbUser.ImageURL = input.ImageURL
	if err := ac.DB.Save(&dbUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dbUser)
}

// UpdateCategories replaces the caller's category label for each marker
// color. The mapping must contain exactly the five known colors.
func (ac *AuthController) UpdateCategories(c *gin.Context) {
	user := utils.GetUser(c)

	var labels map[models.MarkerColor]string
	if err := c.ShouldBindJSON(&labels); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateCategoryLabels(labels); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	dbUser.SetCategoryLabels(labels)
	if err := ac.DB.Save(&dbUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
		return
	}

	c.JSON(http.StatusOK, dbUser)
}

// KakaoLogin signs a user in with a Kakao access token, creating the account
// on first login.
func (ac *AuthController) KakaoLogin(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userInfo, err := ac.KakaoConfig.GetUserInfo(input.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Kakao token"})
		return
	}

	kakaoID := userInfo.AccountID()
	var user models.User
	err = ac.DB.Where("kakao_id = ?", kakaoID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Email:     userInfo.Email(),
			Password:  kakaoID,
			LoginType: "kakao",
			Nickname:  userInfo.Nickname(),
			ImageURL:  userInfo.ProfileImageURL(),
			KakaoID:   &kakaoID,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kakao login failed"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kakao login failed"})
		return
	}

	tokens, err := ac.generateTokenPair(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// DeleteAccount removes the user row. Remaining posts block the delete via
// the referential constraint.
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	user := utils.GetUser(c)

	if err := ac.DB.Delete(&models.User{}, user.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete account while posts remain"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
