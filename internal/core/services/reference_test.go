package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewReference_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^REQ-[0-9A-F]{8}$`)
	for i := 0; i < 50; i++ {
		ref := NewReference(RequestRefPrefix)
		assert.Regexp(t, pattern, ref)
	}

	assert.Regexp(t, `^REC-[0-9A-F]{8}$`, NewReference(ComplaintRefPrefix))
}

func Test_NewReference_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference(RequestRefPrefix)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
