package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	ErrEmptySecret    = errors.New("JWT_SECRET is empty")
	ErrInvalidToken   = errors.New("invalid session token")
	ErrMissingSubject = errors.New("psychologist id is required")
)

// JWTManager signs and verifies psychologist session tokens (HS256).
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	PsychologistID string `json:"psychologist_id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	jwt.RegisteredClaims
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, ErrEmptySecret
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		issuer: cfg.JWT.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// CreateToken issues a token carrying the session identity. iat and nbf are
// set to now, exp to now plus the configured TTL.
func (j *JWTManager) CreateToken(ctx context.Context, session models.Session) (string, time.Time, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Debug("JWTManager.CreateToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, session.PsychologistID),
	)

	if strings.TrimSpace(session.PsychologistID) == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := sessionClaims{
		PsychologistID: session.PsychologistID,
		Email:          session.Email,
		Name:           session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.PsychologistID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken checks signature, algorithm and expiry and returns the session.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}

	claims := &sessionClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PsychologistID == "" {
		return nil, ErrInvalidToken
	}

	return &models.Session{
		PsychologistID: claims.PsychologistID,
		Email:          claims.Email,
		Name:           claims.Name,
	}, nil
}
