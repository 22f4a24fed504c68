package auth

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/app/services/shared/jwtmanager"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	Psychologists contracts.PsychologistRepository
	JWTManager    *jwtmanager.JWTManager
	Log           *zap.Logger
}

func NewAuthUsecase(psychologists contracts.PsychologistRepository, jwtManager *jwtmanager.JWTManager, log *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		Psychologists: psychologists,
		JWTManager:    jwtManager,
		Log:           log,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	email := utils.NormalizeEmail(request.Email)

	psychologist, err := uc.Psychologists.FindByEmail(ctx, email)
	if err != nil {
		return nil, exceptions.ErrDataClientFetch(err, "psychologist")
	}
	if psychologist == nil {
		utils.LogSecurityEvent(uc.Log, "login_unknown_email", requestID, "medium")
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(psychologist.PasswordHash), []byte(request.Password)); err != nil {
		utils.LogSecurityEvent(uc.Log, "login_wrong_password", requestID, "medium",
			zap.String(constvars.LoggingPsychologistIDKey, psychologist.ID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	token, _, err := uc.JWTManager.CreateToken(ctx, models.Session{
		PsychologistID: psychologist.ID,
		Email:          psychologist.Email,
		Name:           psychologist.Name,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "psychologist_logged_in", requestID,
		zap.String(constvars.LoggingPsychologistIDKey, psychologist.ID),
	)

	return &responses.Login{
		Token:          token,
		PsychologistID: psychologist.ID,
		Name:           psychologist.Name,
		Email:          psychologist.Email,
	}, nil
}

func (uc *authUsecase) ParseToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	session, err := uc.JWTManager.VerifyToken(ctx, token)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return session, nil
}
