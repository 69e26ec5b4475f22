package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"waco-shop/config"
	"waco-shop/middleware"
	"waco-shop/services"
)

const (
	stateCookie         = "waco_oauth_state"
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email"
)

type OAuthController struct {
	Auth *services.AuthService
}

func googleConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.AppURL + "/auth/google/callback",
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

func facebookConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.FacebookClientID,
		ClientSecret: config.AppConfig.FacebookClientSecret,
		RedirectURL:  config.AppConfig.AppURL + "/auth/facebook/callback",
		Scopes:       []string{"email"},
		Endpoint:     facebook.Endpoint,
	}
}

// GoogleLogin godoc
// @Summary Google login
// @Description Redirect to Google's consent screen
// @Tags Authentication
// @Router /auth/google [get]
func (ctrl *OAuthController) GoogleLogin(c *gin.Context) {
	ctrl.redirectToProvider(c, googleConfig())
}

// GoogleCallback godoc
// @Summary Google callback
// @Description Complete the Google login and establish the session
// @Tags Authentication
// @Router /auth/google/callback [get]
func (ctrl *OAuthController) GoogleCallback(c *gin.Context) {
	ctrl.handleCallback(c, googleConfig(), googleUserInfoURL, "google")
}

// FacebookLogin godoc
// @Summary Facebook login
// @Description Redirect to Facebook's consent screen
// @Tags Authentication
// @Router /auth/facebook [get]
func (ctrl *OAuthController) FacebookLogin(c *gin.Context) {
	ctrl.redirectToProvider(c, facebookConfig())
}

// FacebookCallback godoc
// @Summary Facebook callback
// @Description Complete the Facebook login and establish the session
// @Tags Authentication
// @Router /auth/facebook/callback [get]
func (ctrl *OAuthController) FacebookCallback(c *gin.Context) {
	ctrl.handleCallback(c, facebookConfig(), facebookUserInfoURL, "facebook")
}

func (ctrl *OAuthController) redirectToProvider(c *gin.Context, conf *oauth2.Config) {
	state := uuid.NewString()
	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", secure, true)
	c.Redirect(http.StatusFound, conf.AuthCodeURL(state))
}

type providerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (ctrl *OAuthController) handleCallback(c *gin.Context, conf *oauth2.Config, userInfoURL, provider string) {
	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		ctrl.failLogin(c, provider, "state mismatch")
		return
	}

	code := c.Query("code")
	if code == "" {
		ctrl.failLogin(c, provider, "missing code")
		return
	}

	ctx := c.Request.Context()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		ctrl.failLogin(c, provider, err.Error())
		return
	}

	resp, err := conf.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		ctrl.failLogin(c, provider, err.Error())
		return
	}
	defer resp.Body.Close()

	var profile providerProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		ctrl.failLogin(c, provider, err.Error())
		return
	}

	email := profile.Email
	if email == "" {
		// Facebook may withhold the email; fall back to a provider-scoped
		// address so the account still gets a usable key.
		email = profile.ID + "@facebook.com"
	}

	user, err := ctrl.Auth.OAuthLogin(ctx, profile.Name, email, provider)
	if err != nil {
		ctrl.failLogin(c, provider, err.Error())
		return
	}

	sess := middleware.GetSession(c)
	sess.SetUser(user)
	if err := middleware.SaveSession(c); err != nil {
		ctrl.failLogin(c, provider, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/?login=success&email="+url.QueryEscape(user.Email))
}

func (ctrl *OAuthController) failLogin(c *gin.Context, provider, reason string) {
	log.Printf("%s login failed: %s", provider, reason)
	c.Redirect(http.StatusFound, "/?login=failed")
}
