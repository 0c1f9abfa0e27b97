package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plastigest/planta-api/internal/domain/entity"
)

func clock(hhmm string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", "2026-03-10 "+hhmm)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestShiftContains_TurnoDiurno(t *testing.T) {
	s := entity.Shift{StartTime: "06:00", EndTime: "14:00"}

	assert.True(t, s.Contains(clock("06:00")), "el inicio es inclusivo")
	assert.True(t, s.Contains(clock("09:30")))
	assert.False(t, s.Contains(clock("14:00")), "el fin es exclusivo")
	assert.False(t, s.Contains(clock("05:59")))
}

func TestShiftContains_TurnoNocturnoCruzaMedianoche(t *testing.T) {
	s := entity.Shift{StartTime: "22:00", EndTime: "06:00"}

	assert.True(t, s.Contains(clock("23:30")))
	assert.True(t, s.Contains(clock("00:15")))
	assert.True(t, s.Contains(clock("22:00")))
	assert.False(t, s.Contains(clock("06:00")))
	assert.False(t, s.Contains(clock("12:00")))
}

func TestShiftContains_HoraMalFormadaNoContiene(t *testing.T) {
	s := entity.Shift{StartTime: "bogus", EndTime: "14:00"}
	assert.False(t, s.Contains(clock("10:00")))
}

func TestShiftContains_TurnosContiguosNoSeSolapan(t *testing.T) {
	morning := entity.Shift{StartTime: "06:00", EndTime: "14:00"}
	afternoon := entity.Shift{StartTime: "14:00", EndTime: "22:00"}

	at := clock("14:00")
	assert.False(t, morning.Contains(at))
	assert.True(t, afternoon.Contains(at))
}
