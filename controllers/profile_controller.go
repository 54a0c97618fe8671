package controllers

import (
	"net/http"

	"jasit-store/middleware"
	"jasit-store/models"
	"jasit-store/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// @Summary Get user profile
// @Description Get current user profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.UserWithProfile}
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	profile, err := ctrl.profiles.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		fail(c, err, "Gagal memuat profil")
		return
	}
	ok(c, http.StatusOK, "Profil pengguna", profile)
}

// @Summary Update profile
// @Description Update user profile information. Empty fields keep their value
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Response{data=models.UserWithProfile}
// @Failure 400 {object} models.ErrorResponse
// @Router /profile [patch]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	profile, err := ctrl.profiles.Update(c.Request.Context(), principal.UserID, req)
	if err != nil {
		fail(c, err, "Gagal memperbarui profil")
		return
	}
	ok(c, http.StatusOK, "Profil berhasil diperbarui", profile)
}

// @Summary Change password
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Passwords"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/change-password [post]
func (ctrl *ProfileController) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	principal := middleware.CurrentPrincipal(c)
	if err := ctrl.profiles.ChangePassword(c.Request.Context(), principal.UserID, req); err != nil {
		fail(c, err, "Gagal mengubah password")
		return
	}
	ok(c, http.StatusOK, "Password berhasil diubah", nil)
}
