package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ErrInvalidCredentials rejects unknown username/password pairs.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ContextUserKey is the gin context key under which the middleware stores
// the authenticated username.
const ContextUserKey = "session_user"

// account is one of the fixed demo logins.
type account struct {
	password string
	role     string
}

// Demo accounts; this is a demo platform, credential storage is out of scope.
var accounts = map[string]account{
	"admin":     {password: "admin123", role: "admin"},
	"farmer1":   {password: "farm2025", role: "farmer"},
	"customer1": {password: "cust2025", role: "customer"},
	"business1": {password: "busi2025", role: "business"},
	"guest":     {password: "guest123", role: "guest"},
}

// Authenticator issues and verifies session tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates an authenticator signing tokens with the given
// secret. Tokens expire after ttl.
func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// Login checks a demo account and returns a signed session token.
func (a *Authenticator) Login(username, password string) (string, error) {
	acct, ok := accounts[username]
	if !ok || acct.password != password {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": acct.role,
		"exp":  time.Now().Add(a.ttl).Unix(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the username it was issued to.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}

// Middleware returns a gin handler enforcing a valid session token and
// storing the username in the request context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		username, err := a.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, username)
		c.Next()
	}
}
