package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golonikum/attractions-app/internal/model"
	"github.com/golonikum/attractions-app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL — срок действия токена авторизации.
const tokenTTL = 7 * 24 * time.Hour

// Claims — полезная нагрузка JWT: идентификатор и email пользователя.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService отвечает за регистрацию и авторизацию пользователей
// и за выпуск/проверку JWT.
type AuthService struct {
	userRepo *repository.UserRepository
	secret   []byte
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo *repository.UserRepository, secret string) *AuthService {
	return &AuthService{userRepo: userRepo, secret: []byte(secret)}
}

// Register создает нового пользователя с хешированным паролем.
func (s *AuthService) Register(req model.RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email и password обязательны", ErrValidation)
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login проверяет учетные данные и возвращает пользователя вместе с токеном.
func (s *AuthService) Login(req model.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken выпускает подписанный JWT с id и email пользователя.
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен: %w", err)
	}
	return signed, nil
}

// VerifyToken проверяет подпись и срок действия токена
// и возвращает идентификатор пользователя.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("недействительный токен: %w", err)
	}
	if !token.Valid || claims.ID == "" {
		return "", errors.New("недействительный токен")
	}
	return claims.ID, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *AuthService) GetUser(id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
