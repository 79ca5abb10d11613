package utility

import (
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// tokenClaims là payload của JWT phiên đăng nhập.
// Time và RandomNumber đảm bảo mỗi lần đăng nhập sinh token khác nhau.
type tokenClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT (HS256) cho một phiên đăng nhập của user.
// Trả về map để handler trả thẳng cho client: {"token": "..."}.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(30 * 24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken xác thực chữ ký và trả về userId trong token.
// Token hết hạn hoặc sai chữ ký đều trả về lỗi.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
