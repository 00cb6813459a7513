package auth

import (
	"fmt"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

// GetAccessToken verifies seeded credentials and returns a signed access
// token. Used by handler tests to drive authenticated endpoints.
func GetAccessToken(db *database.DBinstanceStruct, username, password string) (string, error) {
	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", fmt.Errorf("failed to find user %q: %w", username, err)
	}

	if !utilities.ComparePassword(user.Password, password) {
		return "", fmt.Errorf("wrong password for user %q", username)
	}

	return GenerateToken(user.ID)
}
