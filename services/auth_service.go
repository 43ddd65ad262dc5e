package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/creativeyMedia/fwkantine/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	empRepo   *repository.EmployeeRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.EmployeeRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		empRepo:   repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// CreateEmployee registers a canteen participant (admin-only surface).
func (s *AuthService) CreateEmployee(name, email, pin string, deptID uint, role string) (*entity.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pin == "" {
		return nil, fmt.Errorf("%w: email and pin are required", apperr.ErrValidation)
	}
	if role == "" {
		role = "employee"
	}
	if role != "employee" && role != "admin" {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, role)
	}
	if deptID != 0 {
		ok, err := s.empRepo.DepartmentExists(deptID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("department %d: %w", deptID, apperr.ErrNotFound)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash pin failed")
	}

	emp := &entity.Employee{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PINHash:      string(hashed),
		Role:         role,
		DepartmentID: deptID,
	}
	if err := s.empRepo.Create(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Login checks the PIN and issues a JWT.
func (s *AuthService) Login(email, pin string) (string, *entity.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	emp, err := s.empRepo.GetByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PINHash), []byte(pin)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(emp.ID, emp.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, emp, nil
}

func (s *AuthService) GetProfile(employeeID uint) (*entity.Employee, error) {
	return s.empRepo.Get(s.empRepo.DB, employeeID)
}
