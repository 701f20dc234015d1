package entity

import (
	"testing"
	"time"
)

func TestPatientAge(t *testing.T) {
	at := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want int
	}{
		{"birthday already passed", "1990-03-15", 36},
		{"birthday today", "1990-09-01", 36},
		{"birthday later this year", "1990-12-20", 35},
		{"later this month", "1990-09-02", 35},
		{"born this year", "2026-01-10", 0},
		{"unparseable dob", "15/03/1990", 0},
		{"empty dob", "", 0},
		{"future dob", "2030-01-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Patient{DOB: tt.dob}
			if got := p.Age(at); got != tt.want {
				t.Errorf("Age(%q) = %d, expected %d", tt.dob, got, tt.want)
			}
		})
	}
}
