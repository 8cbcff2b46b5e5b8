package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

type User struct {
	Subject string // 用户名
	Role    string // 角色
	Expires int64  // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Key 提供给 echo-jwt 中间件使用的签名密钥
func (j *JWT) Key() []byte {
	return j.key
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 验证签名与有效期
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 映射字段
	user := &User{}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if user.Subject, ok = claims["sub"].(string); !ok {
			return nil, errors.New("invalid subject claim")
		}
		if user.Role, ok = claims["role"].(string); !ok {
			return nil, errors.New("invalid role claim")
		}
		if exp, ok := claims["exp"].(float64); ok {
			user.Expires = int64(exp)
		}
	} else {
		return nil, errors.New("invalid token")
	}

	return user, nil
}

// ExtractSubject 在不验证签名的情况下解出 subject ，只用于日志与排查。
// 任何授权判断都必须走 ParseUser 。
func (j *JWT) ExtractSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("decode jwt failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("missing subject claim")
	}

	return sub, nil
}

func (j *JWT) SignToken(user *User) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sub":  user.Subject,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  user.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
