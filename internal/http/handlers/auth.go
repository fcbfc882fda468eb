package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const staffTokenTTL = 24 * time.Hour

// POST /api/auth/login
//
// The staff portal has a single account configured through the
// environment. No password hash configured means no login at all.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if cfg.StaffPasswordHash == "" {
		RespondError(c, http.StatusServiceUnavailable, "staff login is not configured", nil)
		return
	}

	nameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.StaffUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(cfg.StaffPasswordHash), []byte(req.Password))
	if !nameOK || passErr != nil {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": cfg.StaffUsername,
		"iat": now.Unix(),
		"exp": now.Add(staffTokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    tokenString,
		"username": cfg.StaffUsername,
		"expires":  now.Add(staffTokenTTL).Unix(),
	})
}
