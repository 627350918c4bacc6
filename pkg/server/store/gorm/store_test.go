package gorm

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telelink/pkg/crypt"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, crypt.SymmetricCipher) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	dataKey := make([]byte, crypt.DataKeySize)
	for i := range dataKey {
		dataKey[i] = byte(i)
	}
	cipher, err := crypt.NewSymmetric(dataKey)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), "cipher", cipher)
	return gormDB.WithContext(ctx), mock, cipher
}
