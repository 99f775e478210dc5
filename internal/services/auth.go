package services

import (
	"errors"
	"log"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db             *gorm.DB
	credits        *CreditService
	jwtSecret      []byte
	initialCredits int
}

func NewAuthService(db *gorm.DB, credits *CreditService, jwtSecret string, initialCredits int) *AuthService {
	return &AuthService{
		db:             db,
		credits:        credits,
		jwtSecret:      []byte(jwtSecret),
		initialCredits: initialCredits,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Role            string
	AdmissionNumber string
	Branch          string
	Section         string
}

func (s *AuthService) Register(input RegisterInput) (string, error) {
	if input.Role != models.RoleStudent && input.Role != models.RoleFaculty {
		return "", errors.New("role must be student or faculty")
	}

	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return "", errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Role:            input.Role,
		AdmissionNumber: input.AdmissionNumber,
		Branch:          input.Branch,
		Section:         input.Section,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	// Students start with an AI credit allowance.
	if user.Role == models.RoleStudent && s.initialCredits > 0 {
		if _, err := s.credits.Grant(user.ID, s.initialCredits, models.CreditActionSignup); err != nil {
			log.Printf("failed to grant signup credits to user %d: %v", user.ID, err)
		}
	}

	return s.GenerateToken(user.ID, user.Role)
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken(user.ID, user.Role)
}

func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *AuthService) GenerateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("invalid user_id in token")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", errors.New("invalid role in token")
	}

	return uint(userIDFloat), role, nil
}
