package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/HarshCode115/AapdaRakshak/config"
	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUsers(t *testing.T, db *gorm.DB, users ...models.User) {
	t.Helper()
	for i := range users {
		if users[i].Password == "" {
			users[i].Password = "hashed"
		}
		require.NoError(t, db.Create(&users[i]).Error)
	}
}

type fakeGeocoder struct {
	lat, lon float64
	err      error
}

func (f *fakeGeocoder) Lookup(ctx context.Context, location string) (float64, float64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.lat, f.lon, nil
}

type fakeEmailSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("mail provider down")
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeSMSSender struct {
	mu      sync.Mutex
	batches [][]string
	fail    bool
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, numbers []string, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("sms provider down")
	}
	f.batches = append(f.batches, numbers)
	return nil
}
