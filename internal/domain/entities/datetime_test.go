package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hospitalcompare/internal/domain/entities"
)

func TestLocalDateTime_MarshalsWithoutZoneOffset(t *testing.T) {
	ts := entities.NewLocalDateTime(time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local))

	data, err := json.Marshal(ts)

	assert.NoError(t, err)
	assert.Equal(t, `"2026-03-14T09:30:00"`, string(data))
}

func TestLocalDateTime_UnmarshalAcceptsBackendVariants(t *testing.T) {
	for _, raw := range []string{
		`"2026-03-14T09:30:00"`,
		`"2026-03-14T09:30:00.123456"`,
	} {
		var ts entities.LocalDateTime
		err := json.Unmarshal([]byte(raw), &ts)

		assert.NoError(t, err, raw)
		assert.Equal(t, 2026, ts.Year())
		assert.Equal(t, 30, ts.Minute())
	}
}

func TestLocalDateTime_UnmarshalRejectsGarbage(t *testing.T) {
	var ts entities.LocalDateTime

	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
}
