package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"waco-shop/middleware"
	"waco-shop/models"
	"waco-shop/services"
	"waco-shop/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

// Signup godoc
// @Summary Create account
// @Description Register a local account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "All fields required"})
		return
	}

	_, err := ctrl.Auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(400, models.MessageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		log.Println("Signup failed:", err)
		c.JSON(500, models.MessageResponse{Message: "Error creating user"})
		return
	}

	c.JSON(200, models.MessageResponse{Message: "Account created successfully!"})
}

// Login godoc
// @Summary Login
// @Description Login with email and password; sets the session cookie and returns a Bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.MessageResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "All fields required"})
		return
	}

	user, err := ctrl.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(400, models.MessageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		log.Println("Login failed:", err)
		c.JSON(500, models.MessageResponse{Message: "Database error"})
		return
	}

	sess := middleware.GetSession(c)
	sess.SetUser(user)
	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session:", err)
		c.JSON(500, models.MessageResponse{Message: "Login failed"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Email, user.Name)

	c.JSON(200, gin.H{
		"message": "Login successful!",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

// Logout godoc
// @Summary Logout
// @Description Destroy the session and expire the cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := middleware.DestroySession(c); err != nil {
		log.Println("Logout failed:", err)
		c.JSON(500, models.MessageResponse{Message: "Logout failed"})
		return
	}
	c.JSON(200, models.MessageResponse{Message: "Logged out successfully"})
}

// SessionUser godoc
// @Summary Session user
// @Description Get the logged-in user for this session, or null
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/session-user [get]
func (ctrl *AuthController) SessionUser(c *gin.Context) {
	sess := middleware.GetSession(c)
	if !sess.Authenticated() {
		c.JSON(200, gin.H{"user": nil})
		return
	}
	c.JSON(200, gin.H{"user": gin.H{
		"id":       sess.UserID,
		"name":     sess.Name,
		"email":    sess.Email,
		"provider": sess.Provider,
	}})
}

// CheckSession godoc
// @Summary Check session
// @Description Report whether this session is logged in
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/check-session [get]
func (ctrl *AuthController) CheckSession(c *gin.Context) {
	sess := middleware.GetSession(c)
	if !sess.Authenticated() {
		c.JSON(200, gin.H{"loggedIn": false, "user": nil})
		return
	}
	c.JSON(200, gin.H{
		"loggedIn": true,
		"user": gin.H{
			"id":    sess.UserID,
			"name":  sess.Name,
			"email": sess.Email,
		},
	})
}

// CurrentUser godoc
// @Summary Current user
// @Description Get the logged-in user, 401 when anonymous
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.MessageResponse
// @Router /api/user [get]
func (ctrl *AuthController) CurrentUser(c *gin.Context) {
	sess := middleware.GetSession(c)
	if !sess.Authenticated() {
		c.JSON(401, models.MessageResponse{Message: "Not logged in"})
		return
	}

	provider := sess.Provider
	if provider == "" {
		provider = "local"
	}
	c.JSON(200, gin.H{
		"email":    sess.Email,
		"name":     sess.Name,
		"provider": provider,
	})
}
