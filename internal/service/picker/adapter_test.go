package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/framelight/FLS-BookingService/internal/service/selection"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func slot(s string) types.TimeString {
	return types.TimeString(s)
}

func TestChooseKind(t *testing.T) {
	// Fine pointer on a wide viewport gets the list.
	assert.Equal(t, KindList, ChooseKind(Capabilities{CoarsePointer: false, ViewportWidth: 1280}))

	// Coarse pointer always gets the wheel, even on a wide screen.
	assert.Equal(t, KindWheel, ChooseKind(Capabilities{CoarsePointer: true, ViewportWidth: 1280}))

	// Narrow viewport gets the wheel regardless of pointer.
	assert.Equal(t, KindWheel, ChooseKind(Capabilities{CoarsePointer: false, ViewportWidth: 480}))

	// 768 is the first width wide enough for the list.
	assert.Equal(t, KindList, ChooseKind(Capabilities{ViewportWidth: 768}))
	assert.Equal(t, KindWheel, ChooseKind(Capabilities{ViewportWidth: 767}))
}

func TestNewAdapter_Kinds(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	session := selection.NewSession(nil, "", now)

	assert.Equal(t, KindList, NewAdapter(KindList, session, now).Kind())
	assert.Equal(t, KindWheel, NewAdapter(KindWheel, session, now).Kind())
}
