// Package crypt provides the reversible encryption used for Telegram
// identifiers and bot tokens at rest.
//
// The SymmetricCipher interface wraps AES-256-GCM with caller-supplied
// additional authenticated data, so a ciphertext lifted from one row cannot
// be replayed into another:
//
//	cipher, err := crypt.NewSymmetric(dataKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct, err := crypt.EncryptString(cipher, "user:42", chatID)
//	pt, err := crypt.DecryptString(cipher, "user:42", ct)
//
// The data key is loaded once at startup (TELELINK_DATA_KEY) and injected;
// there are no package-level key globals.
package crypt
