package controllers

import (
	"net/http"

	"jasit-store/middleware"
	"jasit-store/models"
	"jasit-store/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Gagal mendaftarkan akun")
		return
	}
	ok(c, http.StatusCreated, "Registrasi berhasil", resp)
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Gagal masuk")
		return
	}
	ok(c, http.StatusOK, "Berhasil masuk", resp)
}

// @Summary Sign out
// @Description Revoke the current token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/signout [post]
func (ctrl *AuthController) Signout(c *gin.Context) {
	if err := ctrl.auth.Signout(c.Request.Context(), middleware.CurrentPrincipal(c)); err != nil {
		fail(c, err, "Gagal keluar")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success:  true,
		Message:  "Berhasil keluar",
		Redirect: "/",
	})
}

// @Summary Current principal
// @Description The signed-in user, or null for anonymous visitors
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response{data=models.Principal}
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Belum masuk", "data": nil})
		return
	}
	ok(c, http.StatusOK, "Pengguna saat ini", principal)
}
