package validation

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// FieldBase holds errors that belong to the record as a whole.
const FieldBase = "base"

// Errors collects messages per field, keeping the order fields first failed in.
type Errors struct {
	fields   []string
	messages map[string][]string
}

func NewErrors() *Errors {
	return &Errors{messages: make(map[string][]string)}
}

func (e *Errors) Add(field, message string) {
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

func (e *Errors) Empty() bool {
	return len(e.fields) == 0
}

func (e *Errors) Fields() []string {
	return append([]string(nil), e.fields...)
}

func (e *Errors) Get(field string) []string {
	return e.messages[field]
}

// First returns the first message recorded for field, or "".
func (e *Errors) First(field string) string {
	msgs := e.messages[field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// FullMessages prefixes every message with its humanized field name.
// Messages on base are returned unchanged.
func (e *Errors) FullMessages() []string {
	var out []string
	for _, field := range e.fields {
		for _, msg := range e.messages[field] {
			out = append(out, fullMessage(field, msg))
		}
	}
	return out
}

// Error reports the first message of each field.
func (e *Errors) Error() string {
	firsts := lo.Map(e.fields, func(field string, _ int) string {
		return fullMessage(field, e.First(field))
	})
	return "Validation failed: " + strings.Join(firsts, ", ")
}

// MediaTooLarge reports an attachment over the size limit that was rejected
// before it could be fully read.
func MediaTooLarge() error {
	errs := NewErrors()
	errs.Add(FieldMedia, MsgMediaTooLarge)
	return errs
}

// IsValidationError reports whether err carries validation errors.
func IsValidationError(err error) bool {
	var verr *Errors
	return errors.As(err, &verr)
}

func fullMessage(field, message string) string {
	if field == FieldBase {
		return message
	}
	return humanize(field) + " " + message
}

func humanize(field string) string {
	s := strings.ReplaceAll(strings.TrimSuffix(field, "_id"), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
