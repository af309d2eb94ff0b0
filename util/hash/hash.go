package hash

import "golang.org/x/crypto/bcrypt"

// dummy is compared against when no user matches, so a failed lookup costs
// as much as a failed password check.
var dummy, _ = bcrypt.GenerateFromPassword([]byte("buecheria-timing-pad"), bcrypt.DefaultCost)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether pw matches the bcrypt hash h.
func Check(h, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(pw)) == nil
}

// Burn spends the same work as Check without a stored hash.
func Burn(pw string) {
	_ = bcrypt.CompareHashAndPassword(dummy, []byte(pw))
}
