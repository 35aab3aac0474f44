package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldError reports a failed edit of a single draft field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ErrUnknownField is wrapped by FieldError when a field name is not part of State.
var ErrUnknownField = errors.New("unknown field")

// TextFields are the fields that carry markup and accept snippet inserts.
var TextFields = []string{"text", "title", "subtitle", "description"}

// field binds a JSON field name to accessors on State.
type field struct {
	name string
	get  func(*State) string
	set  func(*State, string) error
}

func stringField(name string, p func(*State) *string) field {
	return field{
		name: name,
		get:  func(s *State) string { return *p(s) },
		set: func(s *State, v string) error {
			*p(s) = v
			return nil
		},
	}
}

func intField(name string, p func(*State) *int) field {
	return field{
		name: name,
		get:  func(s *State) string { return strconv.Itoa(*p(s)) },
		set: func(s *State, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return &FieldError{Field: name, Message: fmt.Sprintf("%q is not an integer", v), Err: err}
			}
			*p(s) = n
			return nil
		},
	}
}

var fields = []field{
	{
		name: "type",
		get:  func(s *State) string { return string(s.Type) },
		set: func(s *State, v string) error {
			s.Type = Kind(strings.ToLower(strings.TrimSpace(v)))
			return nil
		},
	},
	stringField("player", func(s *State) *string { return &s.Player }),
	stringField("config", func(s *State) *string { return &s.Config }),
	stringField("world", func(s *State) *string { return &s.World }),
	stringField("text", func(s *State) *string { return &s.Text }),
	stringField("title", func(s *State) *string { return &s.Title }),
	stringField("subtitle", func(s *State) *string { return &s.Subtitle }),
	stringField("description", func(s *State) *string { return &s.Description }),
	stringField("icon", func(s *State) *string { return &s.Icon }),
	stringField("frame", func(s *State) *string { return &s.Frame }),
	intField("fadein", func(s *State) *int { return &s.FadeIn }),
	intField("stay", func(s *State) *int { return &s.Stay }),
	intField("fadeout", func(s *State) *int { return &s.FadeOut }),
	intField("seconds", func(s *State) *int { return &s.Seconds }),
	stringField("bossbarColor", func(s *State) *string { return &s.BossBarColor }),
	stringField("bossbarStyle", func(s *State) *string { return &s.BossBarStyle }),
	stringField("bossbarOverlay", func(s *State) *string { return &s.BossBarOverlay }),
	stringField("bossbarFillMode", func(s *State) *string { return &s.BossBarFillMode }),
	{
		name: "bossbarProgress",
		get:  func(s *State) string { return strconv.FormatFloat(s.BossBarProgress, 'f', -1, 64) },
		set: func(s *State, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return &FieldError{Field: "bossbarProgress", Message: fmt.Sprintf("%q is not a number", v), Err: err}
			}
			s.BossBarProgress = f
			return nil
		},
	},
}

// lookup finds a field by name, case-insensitively.
func lookup(name string) (field, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.name, name) {
			return f, true
		}
	}
	return field{}, false
}

// FieldNames returns every editable field name in declaration order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Get returns the display value of a field.
func (s *State) Get(name string) (string, error) {
	f, ok := lookup(name)
	if !ok {
		return "", &FieldError{Field: name, Message: "unknown field", Err: ErrUnknownField}
	}
	return f.get(s), nil
}

// Set updates a single field from its string form. Numeric fields are parsed;
// every other field is stored verbatim. Changing the type leaves all other
// fields untouched.
func (s *State) Set(name, value string) error {
	f, ok := lookup(name)
	if !ok {
		return &FieldError{Field: name, Message: "unknown field", Err: ErrUnknownField}
	}
	return f.set(s, value)
}

// SetPairs applies key=value assignments in order. It stops at the first
// malformed pair or failed assignment, leaving earlier assignments applied.
func (s *State) SetPairs(pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return &FieldError{Message: fmt.Sprintf("expected key=value, got %q", pair)}
		}
		if err := s.Set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}
	return nil
}

// Insert places snippet into a text field at rune position pos. A negative
// position, or one past the end of the current value, appends.
func (s *State) Insert(name, snippet string, pos int) error {
	if !isTextField(name) {
		return &FieldError{Field: name, Message: fmt.Sprintf("snippets can only be inserted into %s", strings.Join(TextFields, ", "))}
	}
	f, _ := lookup(name)
	current := []rune(f.get(s))
	if pos < 0 || pos > len(current) {
		pos = len(current)
	}
	updated := string(current[:pos]) + snippet + string(current[pos:])
	return f.set(s, updated)
}

func isTextField(name string) bool {
	for _, t := range TextFields {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
