package validator

import (
	"regexp"
	"unicode/utf8"

	"app/internal/usecase"
)

// 投稿本文の上限（文字数）
const maxContentLength = 1000

// DOMに入れる前に弾く危険パターン
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)data:text/html`),
}

type contentValidator struct{}

// Usecaseは interface を依存注入
func NewContentValidator() usecase.ContentValidator {
	return &contentValidator{}
}

// 本文を検証。呼び出し側でTrimSpace済みの前提。
func (v *contentValidator) ValidateContent(content string) error {
	if content == "" {
		return usecase.ErrEmptyContent
	}

	if utf8.RuneCountInString(content) > maxContentLength {
		return usecase.ErrContentTooLong
	}

	for _, p := range blockedPatterns {
		if p.MatchString(content) {
			return usecase.ErrUnsafeContent
		}
	}

	return nil
}
