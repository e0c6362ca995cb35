package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func customer() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Email: "customer@example.com", Type: entity.AccountTypeCustomer}
}

func admin() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Email: "admin@example.com", Type: entity.AccountTypeAdmin}
}

func ptr[T any](v T) *T {
	return &v
}
