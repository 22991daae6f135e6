package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/accounts"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/utils"
)

type UserController struct {
	users accounts.Store
	store catalog.Store
}

func NewUserController(users accounts.Store, store catalog.Store) *UserController {
	return &UserController{users: users, store: store}
}

// Register signs a developer company up: the login account and its
// Developer catalog record are created together so new projects can be
// attached immediately.
func (uc *UserController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email address"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 6 characters"})
	}
	if req.CompanyName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Company name is required"})
	}

	// The email check runs before the catalog append; a conflicting
	// registration must not leave a stray Developer record behind.
	if _, err := uc.users.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "User with this email already exists"})
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to hash password"})
	}

	developer := models.Developer{
		ID:          uuid.NewString(),
		Name:        req.CompanyName,
		Description: req.Description,
		Contact:     models.DeveloperContact{Email: req.Email, Phone: req.Phone},
		Highlights:  []string{},
	}
	if err := uc.store.AddDeveloper(ctx, developer); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create developer"})
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		Password:    hashedPassword,
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        "developer",
		DeveloperID: developer.ID,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, accounts.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "User with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.DeveloperID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := uc.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}
	if !user.IsActive {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account is deactivated"})
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.DeveloperID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

func (uc *UserController) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(string)

	user, err := uc.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, user)
}
