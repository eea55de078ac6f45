package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"ding-dong-api/models"

	"gorm.io/gorm"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

var (
	// ErrNotFound means no user matched the given email.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidToken means no user holds the presented token.
	ErrInvalidToken = errors.New("invalid update token")
	// ErrEmailTaken means the registration email is already in use.
	ErrEmailTaken = errors.New("user already exists")
)

// Manager owns the session lifecycle: token issuance, validation and
// renewal, plus credential verification. Tokens are opaque random strings
// stored on the user row; there is no logout, a session simply expires and
// is renewed through the single-use update token.
type Manager struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewManager(db *gorm.DB, bcryptCost int) *Manager {
	return &Manager{DB: db, BcryptCost: bcryptCost}
}

// generateToken returns 40 hex characters from a crypto-grade source.
func generateToken() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible can be served in that state.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// Issue rotates both tokens on the user and resets the expiration clock.
// The change is not persisted; callers save the user themselves.
func (m *Manager) Issue(user *models.User) {
	user.SessionToken = generateToken()
	user.UpdateToken = generateToken()
	user.SessionExpiration = time.Now().Add(SessionTTL)
}

// Register creates a user with a hashed password and a freshly issued
// session. Fails with ErrEmailTaken when the email is already registered.
func (m *Manager) Register(name, username, email, password string) (*models.User, error) {
	var existing models.User
	if err := m.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := HashPassword(password, m.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:           name,
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	}
	m.Issue(&user)

	if err := m.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials looks the user up by email and checks the password.
// A missing email is ErrNotFound; a present email returns the user along
// with the verification result.
func (m *Manager) VerifyCredentials(email, password string) (*models.User, bool, error) {
	var user models.User
	if err := m.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	return &user, CheckPassword(user.PasswordDigest, password), nil
}

// StartSession issues a fresh token pair for a user whose credentials were
// just verified and persists it. Logging in therefore always yields a live
// session, even when the previous one had expired.
func (m *Manager) StartSession(user *models.User) error {
	m.Issue(user)
	return m.DB.Save(user).Error
}

// VerifySession returns the user holding the token, but only while the
// session has not expired. A mismatched and an expired token are the same
// failure from the caller's point of view.
func (m *Manager) VerifySession(token string) (*models.User, bool) {
	var user models.User
	if err := m.DB.Where("session_token = ?", token).First(&user).Error; err != nil {
		return nil, false
	}
	if !time.Now().Before(user.SessionExpiration) {
		return nil, false
	}
	return &user, true
}

// Renew exchanges a valid update token for a fresh session/update token
// pair. The presented update token is consumed: after a successful renewal
// it no longer matches any user.
func (m *Manager) Renew(updateToken string) (*models.User, error) {
	var user models.User
	if err := m.DB.Where("update_token = ?", updateToken).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	m.Issue(&user)
	if err := m.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
