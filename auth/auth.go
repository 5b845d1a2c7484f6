package auth

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sudha-1290/Quiz-Master-V1/config"
	"golang.org/x/crypto/bcrypt"
)

const CookieName = "auth_token"

func secretKey() ([]byte, error) {
	key := os.Getenv("JWT_SECRET_KEY")
	if key == "" {
		return nil, fmt.Errorf("auth: JWT_SECRET_KEY not set")
	}
	return []byte(key), nil
}

// CreateToken issues a 24h HS256 token carrying the user id as subject
func CreateToken(userID uint) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"exp": time.Now().Add(time.Hour * 24).Unix(),
		})

	return token.SignedString(key)
}

// VerifyToken parses a token and returns the user id it was issued for
func VerifyToken(tokenString string) (uint, error) {
	key, err := secretKey()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %v", err)
	}
	return uint(id), nil
}

// SetAuthCookie attaches a fresh session cookie for the user
func SetAuthCookie(w http.ResponseWriter, userID uint) error {
	tokenString, err := CreateToken(userID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Domain:   config.Env.Domain,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
	return nil
}

// ClearAuthCookie expires the session cookie
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Domain:   config.Env.Domain,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// HashPassword returns the bcrypt hash to store; plaintext is never persisted
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
