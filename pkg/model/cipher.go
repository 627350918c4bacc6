package model

import (
	"errors"

	"gorm.io/gorm"

	"telelink/pkg/crypt"
)

var errNoCipher = errors.New("no cipher configured on database handle")

// getCipherForDb pulls the symmetric cipher out of the connection context.
// db.Connect places it there at startup.
func getCipherForDb(tx *gorm.DB) (crypt.SymmetricCipher, error) {
	cipher, ok := tx.Statement.Context.Value("cipher").(crypt.SymmetricCipher)
	if !ok || cipher == nil {
		return nil, errNoCipher
	}
	return cipher, nil
}
