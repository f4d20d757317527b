package controllers

import (
	"context"
	"time"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// Register creates a guest account with its profile and issues a token.
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid registration payload")
		return
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, _, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, services.TokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.RegisterResponse{
		User:  convertToUserResponse(user),
		Token: token,
	})
}

// Login checks username/password and issues a token.
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid login payload")
		return
	}

	user, err := services.GetUserByUsername(input.Username)
	if err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "Incorrect username or password", nil))
		return
	}
	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "Incorrect username or password", nil))
		return
	}

	token, expiry, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, services.TokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Token: token, Expiry: expiry})
}

// Logout revokes the presented token until its natural expiry.
func Logout(c *gin.Context) {
	tokenVal, ok := c.Get("token")
	if !ok {
		response.Unauthorized(c)
		return
	}
	token := tokenVal.(string)

	claims, err := services.ParseToken(token)
	if err != nil {
		response.FromError(c, err)
		return
	}

	until := time.Unix(claims.ExpiresAt, 0)
	if err := services.RevokeToken(config.Ctx, config.RedisClient, token, until); err != nil {
		response.ServerError(c)
		return
	}

	response.NoContent(c)
}

// AuthGoogle signs a user in with a Google ID token, creating the account on
// first sight.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid Google auth payload")
		return
	}

	googleUser, err := verifyGoogleIDToken(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Google token is not valid", err))
		return
	}

	user, err := services.GetUserByEmail(googleUser.Email)
	if err != nil {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email)
		if err != nil {
			response.FromError(c, err)
			return
		}
	}

	token, expiry, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, services.TokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Token: token, Expiry: expiry})
}

func verifyGoogleIDToken(ctx context.Context, rawToken string) (*dto.GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, rawToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	return &dto.GoogleUser{
		Name:          name,
		Email:         email,
		VerifiedEmail: verified,
	}, nil
}
