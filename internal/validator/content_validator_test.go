package validator_test

import (
	"strings"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

// Test: 本文検証。空・長すぎ・危険パターンを弾く
func TestContentValidator_ValidateContent(t *testing.T) {
	v := validator.NewContentValidator()

	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"ok", "Quiet afternoons are the best.", nil},
		{"ok at limit", strings.Repeat("a", 1000), nil},
		{"ok multibyte at limit", strings.Repeat("あ", 1000), nil},
		{"empty", "", usecase.ErrEmptyContent},
		{"too long", strings.Repeat("a", 1001), usecase.ErrContentTooLong},
		{"too long multibyte", strings.Repeat("あ", 1001), usecase.ErrContentTooLong},
		{"script tag", "hello <script>alert(1)</script>", usecase.ErrUnsafeContent},
		{"script tag mixed case", "<ScRiPt src=x>", usecase.ErrUnsafeContent},
		{"javascript url", "click javascript:alert(1)", usecase.ErrUnsafeContent},
		{"event handler", `<img src=x onerror = alert(1)>`, usecase.ErrUnsafeContent},
		{"data url", "see data:text/html,<b>x</b>", usecase.ErrUnsafeContent},
		{"plain word online is fine", "I read this online yesterday", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateContent(tc.content)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
