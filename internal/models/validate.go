package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength - максимальная длина текста сообщения в символах
const MaxMessageLength = 1000

var (
	ErrEmptyBody   = errors.New("message body is empty")
	ErrBodyTooLong = errors.New("message body exceeds maximum length")
)

// NormalizeMessageBody обрезает пробелы и проверяет длину текста.
// Длина считается в рунах, как видит ее пользователь.
func NormalizeMessageBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", ErrEmptyBody
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return "", ErrBodyTooLong
	}
	return trimmed, nil
}
