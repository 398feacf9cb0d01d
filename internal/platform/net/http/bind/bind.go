// Package bind decodes JSON request bodies and validates them with messages in
// the caller's language (Thai unless negotiated otherwise)
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/platform/logger"
	pnet "clubhouse/internal/platform/net"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/th"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	th_translations "github.com/go-playground/validator/v10/translations/th"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// Messager lets a request type replace the generated message for a field and tag.
// Return "" to keep the default
type Messager interface {
	ValidationMessage(field, tag string, lang pnet.Lang) string
}

// ValidatorSvc holds the validator and one translator per supported language
type ValidatorSvc struct {
	Validator *validator.Validate
	trans     map[pnet.Lang]ut.Translator
}

// Translator returns the translator for lang, Thai when unknown
func (s *ValidatorSvc) Translator(lang pnet.Lang) ut.Translator {
	if t, ok := s.trans[lang]; ok {
		return t
	}
	return s.trans[pnet.LangThai]
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() { vSvc = build() })
	return vSvc
}

func build() *ValidatorSvc {
	thLoc, enLoc := th.New(), en.New()
	uni := ut.New(thLoc, thLoc, enLoc)
	thT, _ := uni.GetTranslator("th")
	enT, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	log := logger.Named("bind")
	if err := th_translations.RegisterDefaultTranslations(v, thT); err != nil {
		log.Error().Err(err).Msg("register th translations")
	}
	if err := en_translations.RegisterDefaultTranslations(v, enT); err != nil {
		log.Error().Err(err).Msg("register en translations")
	}

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	addTranslation(v, thT, "notblank", "โปรดระบุ {0}")
	addTranslation(v, enT, "notblank", "{0} must not be blank")

	return &ValidatorSvc{
		Validator: v,
		trans:     map[pnet.Lang]ut.Translator{pnet.LangThai: thT, pnet.LangEnglish: enT},
	}
}

// jsonName reports fields by their json tag so messages match the payload
func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

func addTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// RegisterValidation registers a custom tag with a message per language
func RegisterValidation(tag string, fn validator.Func, thMsg, enMsg string) error {
	s := Get()
	if err := s.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	addTranslation(s.Validator, s.trans[pnet.LangThai], tag, thMsg)
	addTranslation(s.Validator, s.trans[pnet.LangEnglish], tag, enMsg)
	return nil
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it and maps failures to project errors.
// Validation failures carry one message per offending field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if !o.AllowEmptyBody {
		peek := make([]byte, 1)
		n, _ := r.Body.Read(peek)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(peek[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(r, dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation on v with messages in the request language
func Validate(r *http.Request, v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return perr.Wrap(err, perr.ErrorCodeValidation, err.Error())
	}
	return FromValidationErrors(verrs, v, pnet.LangOf(r.Context()))
}

// FromValidationErrors builds a validation error keyed by field path
// (participants[0].name); the first field also becomes the headline message
func FromValidationErrors(verrs validator.ValidationErrors, src any, lang pnet.Lang) error {
	trans := Get().Translator(lang)
	m, _ := src.(Messager)

	fields := make(map[string]string, len(verrs))
	var first, firstMsg string
	for _, fe := range verrs {
		path := fieldPath(fe)
		if _, seen := fields[path]; seen {
			continue
		}
		msg := ""
		if m != nil {
			msg = m.ValidationMessage(path, fe.Tag(), lang)
		}
		if msg == "" {
			msg = fe.Translate(trans)
		}
		fields[path] = msg
		if first == "" {
			first, firstMsg = path, msg
		}
	}
	return perr.WithField(perr.Validation(firstMsg, fields), first)
}

// fieldPath drops the struct type from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
