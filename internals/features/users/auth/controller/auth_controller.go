package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"practicas_backend/internals/configs"
	helper "practicas_backend/internals/helpers"

	d "practicas_backend/internals/features/users/auth/dto"
	m "practicas_backend/internals/features/users/auth/model"
	"practicas_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// Register — alta de cuenta. En producción lo usa coordinación para crear
// cuentas de estudiantes y asesores ya vinculadas a su registro (entity_id).
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := m.UserModel{
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserIsActive: true,
	}
	if strings.TrimSpace(req.EntityID) != "" {
		entityID, _ := uuid.Parse(req.EntityID)
		user.UserEntityID = &entityID
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El correo ya está registrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Cuenta creada", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
		"role":    user.UserRole,
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.WritePGError(c, err)
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	return ctl.respondWithTokens(c, &user)
}

// GoogleLogin — valida el id_token contra el client id institucional. Solo
// cuentas pre-registradas: el login nunca crea usuarios.
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req d.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "id_token inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "id_token inválido")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", strings.ToLower(claimSet.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "El correo no está registrado en el sistema")
		}
		return helper.WritePGError(c, err)
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	if user.UserGoogleID == "" {
		ctl.DB.WithContext(c.UserContext()).Model(&m.UserModel{}).
			Where("user_id = ?", user.UserID).
			Update("user_google_id", claimSet.Sub)
	}

	return ctl.respondWithTokens(c, &user)
}

// Refresh — emite un nuevo access token a partir del refresh token.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req d.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil || userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	return ctl.respondWithTokens(c, &user)
}

// Logout — manda el token actual a blacklist hasta su vencimiento.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	h := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token no encontrado")
	}
	tokenString := strings.TrimSpace(parts[1])

	// exp del token para no retener filas más de lo necesario
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	expiresAt := time.Now().Add(service.AccessTokenTTL)
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := m.TokenBlacklist{Token: tokenString, ExpiresAt: expiresAt}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "Sesión ya cerrada", nil)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Sesión cerrada", nil)
}

func (ctl *AuthController) respondWithTokens(c *fiber.Ctx, user *m.UserModel) error {
	access, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	refresh, err := service.IssueRefreshToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	resp := d.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		Role:         user.UserRole,
	}
	if user.UserEntityID != nil {
		resp.EntityID = user.UserEntityID.String()
	}
	return helper.JsonOK(c, "Autenticación exitosa", resp)
}
