package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	// Auto load .env file
	_ "github.com/joho/godotenv/autoload"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

// OauthLoginHandler handles Google login for reviewer accounts.
type OauthLoginHandler struct {
	DB          *database.DBinstanceStruct
	Config      *oauth2.Config
	UserInfoURL string
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler.
func NewOauthLoginHandler(db *database.DBinstanceStruct, config *oauth2.Config, userInfoURL string) *OauthLoginHandler {
	return &OauthLoginHandler{
		DB:          db,
		Config:      config,
		UserInfoURL: userInfoURL,
	}
}

type code struct {
	Code string `json:"code" binding:"required"`
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ReviewerGoogleLoginHandler exchanges a Google auth code for user info,
// matches it against the reviewer allowlist, and issues an access token.
// @Summary Handles Google login authentication for reviewers
// @Description Email must appear in the ADMIN_EMAILS allowlist
// @Tags Auth
// @Accept json
// @Produce json
// @Param Code body code true "Authentication code from google"
// @Success 200 {object} loginResponse "Login success"
// @Success 201 {object} loginResponse "First login, reviewer account created"
// @Failure 400 {object} utilities.ErrorResponse "Fail to receive token or fetch user info"
// @Failure 403 {object} utilities.ErrorResponse "Email not allowlisted for review access"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/google [post]
func (h *OauthLoginHandler) ReviewerGoogleLoginHandler(c *gin.Context) {

	uInfo, err := h.getUserInfo(c)
	if err != nil {
		return
	}

	if !emailAllowlisted(uInfo.Email) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Email is not allowed to access the review workbench",
		})
		return
	}

	respStatus := http.StatusOK

	var user model.User
	err = h.DB.Where("google_id = ?", uInfo.ID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Username: uInfo.Email,
			Email:    &uInfo.Email,
			GoogleID: &uInfo.ID,
			Role:     model.RoleAdmin,
		}
		if err := h.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
			})
			return
		}
		respStatus = http.StatusCreated
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(respStatus, loginResponse{
		User:        user,
		AccessToken: token,
	})
}

// Callback retrieves a query parameter named "code" from the request and
// returns it in a JSON response.
// @Summary Retrieves a query parameter named "code" from the request and returns it in a JSON response
// @Tags Auth
// @Produce json
// @Param Code query string false "Authentication code from google"
// @Success 200 {object} code
// @Router /auth/google/callback [get]
func (h *OauthLoginHandler) Callback(c *gin.Context) {
	aCode := c.Query("code")
	c.JSON(http.StatusOK, code{
		Code: aCode,
	})
}

// getUserInfo exchanges the auth code and fetches the Google profile.
// Writes the error response itself so handlers can just return.
func (h *OauthLoginHandler) getUserInfo(c *gin.Context) (googleUserInfo, error) {
	var uInfo googleUserInfo

	var body code
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Authentication code must be provided",
		})
		return uInfo, err
	}

	token, err := h.Config.Exchange(c.Request.Context(), body.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to exchange authentication code: %s", err.Error()),
		})
		return uInfo, err
	}

	client := h.Config.Client(c.Request.Context(), token)
	resp, err := client.Get(h.UserInfoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user info: %s", err.Error()),
		})
		return uInfo, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := json.NewDecoder(resp.Body).Decode(&uInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to decode user info: %s", err.Error()),
		})
		return uInfo, err
	}

	return uInfo, nil
}

// emailAllowlisted checks the comma separated ADMIN_EMAILS allowlist.
func emailAllowlisted(email string) bool {
	allowlist := os.Getenv("ADMIN_EMAILS")
	if allowlist == "" {
		return false
	}
	for _, allowed := range strings.Split(allowlist, ",") {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}
