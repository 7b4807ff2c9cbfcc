package auth

import "golang.org/x/crypto/bcrypt"

var bcryptCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares in constant effort; any error counts as mismatch.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SetTestCost lowers the bcrypt cost for tests in other packages.
func SetTestCost() func() {
	orig := bcryptCost
	bcryptCost = bcrypt.MinCost
	return func() { bcryptCost = orig }
}
