package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/kakao"
)

type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Config       *oauth2.Config
}

// KakaoUserInfo mirrors the Kakao /v2/user/me response.
type KakaoUserInfo struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname          string `json:"nickname"`
			ThumbnailImageURL string `json:"thumbnail_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// AccountID is the Kakao account id as a string, used as the stable account
// key on the user row.
func (k *KakaoUserInfo) AccountID() string {
	return strconv.FormatInt(k.ID, 10)
}

// Email falls back to the account id when the Kakao account exposes no email.
func (k *KakaoUserInfo) Email() string {
	if k.KakaoAccount.Email != "" {
		return k.KakaoAccount.Email
	}
	return k.AccountID()
}

func (k *KakaoUserInfo) Nickname() string {
	return k.KakaoAccount.Profile.Nickname
}

// ProfileImageURL upgrades plain-http thumbnail links to https.
func (k *KakaoUserInfo) ProfileImageURL() string {
	uri := k.KakaoAccount.Profile.ThumbnailImageURL
	if strings.HasPrefix(uri, "http://") {
		uri = "https://" + strings.TrimPrefix(uri, "http://")
	}
	return uri
}

func NewKakaoConfig() *KakaoConfig {
	clientID := os.Getenv("KAKAO_CLIENT_ID")
	clientSecret := os.Getenv("KAKAO_CLIENT_SECRET")
	redirectURL := os.Getenv("KAKAO_REDIRECT_URL")

	return &KakaoConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
			Endpoint:     kakao.Endpoint,
		},
	}
}

// GetUserInfo resolves a Kakao access token to the account it belongs to.
func (k *KakaoConfig) GetUserInfo(accessToken string) (*KakaoUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, "https://kapi.kakao.com/v2/user/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid token")
	}

	var userInfo KakaoUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %v", err)
	}

	return &userInfo, nil
}
