package session

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way digest for storage.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword verifies a candidate password against a stored digest.
// bcrypt's comparison is constant-time, so a wrong password and a
// mismatched digest are indistinguishable to a timing observer.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
