package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

const ivSize = 12
const tagSize = aes.BlockSize
const versionMagic = byte('T')

// DataKeySize is the required key length for the symmetric cipher.
const DataKeySize = 32

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

type SymmetricCipher interface {
	Decrypt(aad, packedText []byte) ([]byte, error)
	Encrypt(aad, plainText []byte) ([]byte, error)
}

type Symmetric struct {
	aesgcm cipher.AEAD
}

func NewSymmetric(key []byte) (SymmetricCipher, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	return &Symmetric{aesgcm: aesgcm}, nil
}

func (s Symmetric) Decrypt(aad, packedText []byte) ([]byte, error) {
	cipherText, iv, err := UnpackCipherData(packedText)
	if err != nil {
		return nil, err
	}

	return s.aesgcm.Open(nil, iv, cipherText, aad)
}

func (s Symmetric) Encrypt(aad, plainText []byte) ([]byte, error) {
	nonce, err := RandomNonce()
	if err != nil {
		return nil, err
	}

	cipherTextWithTag := s.aesgcm.Seal(nil, nonce, plainText, aad)
	return PackCipherData(cipherTextWithTag, nonce), nil
}

func RandomNonce() ([]byte, error) {
	// Never use more than 2^32 random nonces with a given key because of
	// the risk of a repeat.
	return RandomBytes(ivSize)
}

func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}

// GenerateDataKey returns a fresh random key suitable for NewSymmetric.
func GenerateDataKey() ([]byte, error) {
	return RandomBytes(DataKeySize)
}

// PackCipherData assembles "magic | tag | iv | ciphertext" into a single
// opaque blob for storage.
func PackCipherData(cipherTextWithTag []byte, iv []byte) []byte {
	iv = iv[:ivSize]

	tagStartIndex := len(cipherTextWithTag) - tagSize
	tag := cipherTextWithTag[tagStartIndex:]
	cipherText := cipherTextWithTag[:tagStartIndex]

	data := make([]byte, 1+tagSize+ivSize+len(cipherText))

	data[0] = versionMagic
	index := 1

	copy(data[index:], tag)
	index += tagSize

	copy(data[index:], iv)
	index += ivSize

	copy(data[index:], cipherText)

	return data
}

// UnpackCipherData splits a packed blob back into ciphertext-with-tag and iv.
func UnpackCipherData(packedText []byte) ([]byte, []byte, error) {
	if len(packedText) < 1+tagSize+ivSize {
		return nil, nil, ErrMalformedCiphertext
	}
	if packedText[0] != versionMagic {
		return nil, nil, ErrMalformedCiphertext
	}

	index := 1

	nextIndex := index + tagSize
	tag := packedText[index:nextIndex]
	index = nextIndex

	nextIndex = index + ivSize
	iv := packedText[index:nextIndex]
	index = nextIndex

	cipherText := append(append([]byte{}, packedText[index:]...), tag...)

	return cipherText, iv, nil
}

// EncryptString encrypts plainText and returns a base64 string suitable for
// a TEXT column.
func EncryptString(c SymmetricCipher, aad, plainText string) (string, error) {
	packed, err := c.Encrypt([]byte(aad), []byte(plainText))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(packed), nil
}

// DecryptString reverses EncryptString.
func DecryptString(c SymmetricCipher, aad, cipherTextB64 string) (string, error) {
	packed, err := base64.StdEncoding.DecodeString(cipherTextB64)
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	plain, err := c.Decrypt([]byte(aad), packed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
