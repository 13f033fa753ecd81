package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only reads the first 72 bytes of the input. We truncate explicitly
// instead of letting the primitive error out, so long passwords keep working
// and the stored hashes stay compatible with earlier deployments. Anything
// past byte 72 never reaches the hash.
const maxPasswordBytes = 72

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}
