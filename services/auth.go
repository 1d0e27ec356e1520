package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"trace_app_go/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultSessionDuration is how long an admin stays signed in
	DefaultSessionDuration = 12 * time.Hour
	// MinPasswordLength applies to new admin accounts
	MinPasswordLength = 8
	// BootstrapAdminUsername is the account created from ADMIN_BOOTSTRAP_PASSWORD
	BootstrapAdminUsername = "admin"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// dummyHash is checked for unknown usernames to keep login timing uniform
var dummyHash, _ = HashPassword("dummy_password_for_timing_mitigation")

// AdminAuth manages administrator accounts and their sessions
type AdminAuth struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewAdminAuth creates the admin authentication service
func NewAdminAuth(db *gorm.DB, log *zap.Logger) *AdminAuth {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminAuth{db: db, log: log}
}

// CreateAdmin stores a new administrator with a bcrypt-hashed password
func (a *AdminAuth) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{Username: username, Password: hash}
	if err := a.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	a.logSecurityEvent("ADMIN_CREATED", admin.ID, "username="+username)
	return admin, nil
}

// EnsureBootstrapAdmin creates the "admin" account when no administrator
// exists yet. It does nothing when password is empty.
func (a *AdminAuth) EnsureBootstrapAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}

	var count int64
	if err := a.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if _, err := a.CreateAdmin(ctx, BootstrapAdminUsername, password); err != nil {
		return false, err
	}
	return true, nil
}

// Login checks the credentials and opens a session
func (a *AdminAuth) Login(ctx context.Context, username, password, ipAddress, userAgent string) (*models.AdminSession, error) {
	var admin models.Admin
	err := a.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			CheckPassword(password, dummyHash)
			a.logSecurityEvent("LOGIN_FAILED", "", "unknown username from "+ipAddress)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if !CheckPassword(password, admin.Password) {
		a.logSecurityEvent("LOGIN_FAILED", admin.ID, "wrong password from "+ipAddress)
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.AdminSession{
		ID:        uuid.New().String(),
		AdminID:   admin.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(DefaultSessionDuration),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := a.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	now := time.Now()
	a.db.WithContext(ctx).Model(&admin).Update("last_login_at", &now)

	session.Admin = admin
	a.logSecurityEvent("LOGIN_SUCCESS", admin.ID, "from "+ipAddress)
	return session, nil
}

// ValidateSession validates a session token and returns the session if valid
func (a *AdminAuth) ValidateSession(ctx context.Context, token string) (*models.AdminSession, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	var session models.AdminSession
	err := a.db.WithContext(ctx).Preload("Admin").
		Where("token = ?", token).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.IsExpired() {
		a.db.WithContext(ctx).Delete(&session)
		return nil, ErrSessionInvalid
	}

	return &session, nil
}

// Logout deletes a session
func (a *AdminAuth) Logout(ctx context.Context, token string) error {
	result := a.db.WithContext(ctx).Where("token = ?", token).Delete(&models.AdminSession{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database
func (a *AdminAuth) CleanupExpiredSessions(ctx context.Context) error {
	result := a.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&models.AdminSession{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		a.log.Info("Cleaned up expired admin sessions", zap.Int64("count", result.RowsAffected))
	}
	return nil
}

// logSecurityEvent logs security-related events
func (a *AdminAuth) logSecurityEvent(eventType, adminID, details string) {
	a.log.Info("[SECURITY] "+eventType, zap.String("admin_id", adminID), zap.String("details", details))
}
