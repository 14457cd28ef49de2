package helpers

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Uid       string
	Name      string
	User_role string
	jwt.StandardClaims
}

var SECRET_KEY string = os.Getenv("SECRET_KEY")

const (
	RoleAdmin    = "ADMIN"
	RoleKitchen  = "KITCHEN"
	RoleCustomer = "CUSTOMER"
)

// TokenLifetime returns how long a session lasts for the role. Admin and
// customer sessions last a day, kitchen displays stay signed in for a week.
func TokenLifetime(userRole string) time.Duration {
	if userRole == RoleKitchen {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

func GenerateToken(uid string, name string, userRole string) (signedToken string, err error) {
	claim := SignedDetails{
		Uid:       uid,
		Name:      name,
		User_role: userRole,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Local().Unix(),
			ExpiresAt: time.Now().Local().Add(TokenLifetime(userRole)).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(SECRET_KEY))
}

func ValidateToken(signedToken string) (claim *SignedDetails, msg string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(SECRET_KEY), nil
		},
	)
	if err != nil {
		msg = err.Error()
		return
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		msg = fmt.Sprintf("the token is invalid")
		return
	}
	if claims.ExpiresAt < time.Now().Local().Unix() {
		msg = fmt.Sprintf("token is expired")
		return
	}
	return claims, msg
}
