package testhelper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
)

// NewMockPool returns a pgxmock pool whose expectations are verified when the test ends.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet sql expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}

type uuidArg uuid.UUID

// UUIDArg matches a uuid argument whether the driver sees the value itself
// or its string form after driver.Valuer conversion.
func UUIDArg(id uuid.UUID) pgxmock.Argument {
	return uuidArg(id)
}

func (a uuidArg) Match(v any) bool {
	switch got := v.(type) {
	case uuid.UUID:
		return got == uuid.UUID(a)
	case [16]byte:
		return got == [16]byte(a)
	case string:
		return got == uuid.UUID(a).String()
	default:
		return false
	}
}
