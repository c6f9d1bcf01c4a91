package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilePlace(t *testing.T) {
	assert.Equal(t, "Valencia, España", Profile{City: "Valencia", Country: "España"}.Place())
	assert.Equal(t, "Remote", Profile{City: "Valencia", Location: "Remote"}.Place())
	assert.Equal(t, "España", Profile{Country: "España"}.Place())
	assert.Empty(t, Profile{}.Place())
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF([]byte("%PDF-1.7\n...")))
	assert.False(t, IsPDF([]byte("<html>")))
	assert.False(t, IsPDF(nil))
}
