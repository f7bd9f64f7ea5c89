package auth

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// placeholderHash is a syntactically valid bcrypt hash of a random value that
// is never issued as a real credential. When a login targets an email with no
// stored credential, the comparison still runs against this hash so the
// response time does not reveal whether the account exists.
const placeholderHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func hashCost() int {
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil && cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			return cost
		}
	}
	return bcrypt.DefaultCost
}

// HashPassword hashes a plaintext password with the configured bcrypt cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. When hash
// is empty the placeholder hash is compared instead, so callers pay the bcrypt
// cost whether or not a credential was found.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		hash = placeholderHash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
