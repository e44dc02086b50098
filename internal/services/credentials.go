package services

import (
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/cryptox"
)

// PasswordEncoder turns a password into the value kept in the users table.
// Encode must be deterministic: login looks the user up by the encoded value.
type PasswordEncoder interface {
	Encode(password string) (string, error)
}

// PlainText stores passwords as entered.
type PlainText struct{}

func (PlainText) Encode(password string) (string, error) {
	return password, nil
}

// Argon2 stores the hex Argon2id key of the password, salted with an
// application-wide pepper.
type Argon2 struct {
	Pepper []byte
}

func (a Argon2) Encode(password string) (string, error) {
	if len(a.Pepper) == 0 {
		return "", errors.New("argon2 encoder requires a pepper")
	}
	p := []byte(password)
	defer common.WipeByteArray(p)
	return cryptox.DeriveKeyHex(p, a.Pepper), nil
}

// NewPasswordEncoder returns the encoder registered under name ("plain" or "argon2").
func NewPasswordEncoder(name string, pepper string) (PasswordEncoder, error) {
	switch name {
	case "", "plain":
		return PlainText{}, nil
	case "argon2":
		if pepper == "" {
			return nil, errors.New("argon2 password encoding requires a pepper")
		}
		return Argon2{Pepper: []byte(pepper)}, nil
	}
	return nil, errors.New("unknown password encoding " + name)
}
