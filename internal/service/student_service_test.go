package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollNoPattern(t *testing.T) {
	valid := []string{
		"101cs0001",
		"233ad1234",
		"999me0007",
		"120ec4321",
	}
	for _, roll := range valid {
		assert.True(t, rollNoPattern.MatchString(roll), "expected %q to be valid", roll)
	}

	invalid := []string{
		"",
		"101cs001",    // too few trailing digits
		"1cs0001",     // too few leading digits
		"101xx0001",   // unknown department code
		"101CS0001",   // uppercase department
		"101cs00012",  // too many trailing digits
		" 101cs0001",  // leading whitespace
		"101cs0001 ",  // trailing whitespace
	}
	for _, roll := range invalid {
		assert.False(t, rollNoPattern.MatchString(roll), "expected %q to be invalid", roll)
	}
}
