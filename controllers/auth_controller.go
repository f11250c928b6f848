package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kmch-aqps/ovr-portal/middleware"
	"github.com/kmch-aqps/ovr-portal/models"
	"github.com/kmch-aqps/ovr-portal/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// RegisterForm and LoginForm are the credential forms. Both fields are
// required; blanks are rejected before the store is touched.
type RegisterForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func (ac *AuthController) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		utils.AddFlash(c, "danger", "Could not read the submitted form")
		render(c, http.StatusBadRequest, "register.html", nil)
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if form.Email == "" || form.Password == "" {
		utils.AddFlash(c, "danger", "Email and password are required")
		render(c, http.StatusBadRequest, "register.html", gin.H{"email": form.Email})
		return
	}

	hashed, err := utils.HashPassword(form.Password)
	if err != nil {
		utils.AddFlash(c, "danger", "Could not create your account. Please try again.")
		render(c, http.StatusInternalServerError, "register.html", gin.H{"email": form.Email})
		return
	}

	user := models.User{Email: form.Email, Password: hashed}
	if err := ac.DB.Create(&user).Error; err != nil {
		if isDuplicateEmail(err) {
			utils.AddFlash(c, "danger", "An account with that email already exists")
		} else {
			utils.AddFlash(c, "danger", "Could not create your account. Please try again.")
		}
		render(c, http.StatusBadRequest, "register.html", gin.H{"email": form.Email})
		return
	}

	utils.AddFlash(c, "success", "Your account has been created! You are now able to log in")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func (ac *AuthController) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		utils.AddFlash(c, "danger", "Could not read the submitted form")
		render(c, http.StatusBadRequest, "login.html", nil)
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if form.Email == "" || form.Password == "" {
		utils.AddFlash(c, "danger", "Email and password are required")
		render(c, http.StatusBadRequest, "login.html", gin.H{"email": form.Email})
		return
	}

	var user models.User
	err := ac.DB.Where("email = ?", form.Email).First(&user).Error
	if err != nil || !utils.CheckPassword(form.Password, user.Password) {
		// Same message for unknown email and wrong password.
		utils.AddFlash(c, "danger", "Login Unsuccessful. Please check email and password")
		render(c, http.StatusUnauthorized, "login.html", gin.H{"email": form.Email})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		utils.AddFlash(c, "danger", "Could not establish your session. Please try again.")
		render(c, http.StatusInternalServerError, "login.html", gin.H{"email": form.Email})
		return
	}

	c.Redirect(http.StatusFound, "/submit")
}

func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

func isDuplicateEmail(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
