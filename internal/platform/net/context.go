// Package net holds request scoped values shared by transports and services
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"
)

type ctxKey string

const keyLang ctxKey = "lang"

// Lang selects the language user facing messages are rendered in
type Lang string

const (
	LangThai    Lang = "th"
	LangEnglish Lang = "en"
)

// index 0 is the fallback
var langMatcher = language.NewMatcher([]language.Tag{language.Thai, language.English})

// WithRequest sets the chi request id so chimw.GetReqID can read it back
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// WithLang annotates ctx with the negotiated message language
func WithLang(ctx context.Context, l Lang) context.Context {
	if l == "" {
		return ctx
	}
	return context.WithValue(ctx, keyLang, l)
}

// LangOf returns the message language on ctx, Thai when unset
func LangOf(ctx context.Context) Lang {
	if l, ok := ctx.Value(keyLang).(Lang); ok {
		return l
	}
	return LangThai
}

// NegotiateLang picks th or en from an Accept-Language header
func NegotiateLang(header string) Lang {
	if header == "" {
		return LangThai
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return LangThai
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No || idx != 1 {
		return LangThai
	}
	return LangEnglish
}
