package crud

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field describes one tracked form field of an entity schema.
type Field struct {
	// Name is the payload key, a dotted path for nested fields.
	Name string

	// Default is the create-mode value. A nil Default means the empty
	// string.
	Default any

	// Rules is a validator tag list, e.g. "required,min=2,max=100" or
	// "omitempty,email".
	Rules string

	// Password marks a secret field: in edit mode an empty value means
	// "leave unchanged" and the field is dropped from the payload before
	// validation, while in create mode the usual rules apply.
	Password bool

	// ConfirmOf names another field this one must equal (e.g. password
	// confirmation). Confirmation fields are validation-only and are
	// stripped from the submitted payload.
	ConfirmOf string
}

// Schema is the declarative descriptor parameterizing the form controller
// for one entity: its tracked fields plus a function flattening a record
// into field values.
type Schema[T Record] struct {
	Fields    []Field
	Decompose func(T) Values
}

// ValidationError carries per-field failure reasons. It never reaches the
// network: validation failures abort a submission locally.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// FormController manages one edit/create session's field values and
// validation, and hands validated payloads to the submit coordinator. The
// record under edit is supplied externally (by the list controller's edit
// action); a nil record means create mode.
type FormController[T Record] struct {
	mu          sync.Mutex
	schema      Schema[T]
	collab      Collaborator[T]
	notifier    Notifier
	validate    *validator.Validate
	current     *T
	values      Values
	fieldErrors map[string]string
	onComplete  func(Result[T])
}

// FormOption configures a FormController.
type FormOption[T Record] func(*FormController[T])

// WithFormNotifier sets the notification channel for submission outcomes.
func WithFormNotifier[T Record](n Notifier) FormOption[T] {
	return func(c *FormController[T]) { c.notifier = n }
}

// WithOnComplete sets the hook invoked after every successful submission.
// What completion means (closing a dialog, navigating away) is entirely
// the caller's decision; the hook fires for both creates and updates.
func WithOnComplete[T Record](fn func(Result[T])) FormOption[T] {
	return func(c *FormController[T]) { c.onComplete = fn }
}

// NewFormController creates a form controller in create mode with all
// fields at their defaults. Panics if the collaborator or the schema's
// Decompose function is nil.
func NewFormController[T Record](schema Schema[T], collab Collaborator[T], opts ...FormOption[T]) *FormController[T] {
	if collab == nil {
		panic("crud.NewFormController: collaborator must not be nil")
	}
	if schema.Decompose == nil {
		panic("crud.NewFormController: schema.Decompose must not be nil")
	}
	c := &FormController[T]{
		schema:      schema,
		collab:      collab,
		notifier:    nopNotifier{},
		validate:    validator.New(),
		fieldErrors: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	c.values = c.defaults()
	return c
}

// Load replaces the record under edit. A non-nil record populates every
// tracked field from it; nil resets every field to its default (create
// mode). Must be called whenever the externally supplied record reference
// changes identity, including transitions to and from nil.
func (c *FormController[T]) Load(record *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = record
	c.fieldErrors = map[string]string{}
	if record == nil {
		c.values = c.defaults()
		return
	}

	decomposed := c.schema.Decompose(*record)
	values := c.defaults()
	for _, f := range c.schema.Fields {
		if v, ok := decomposed[f.Name]; ok {
			values[f.Name] = v
		}
	}
	c.values = values
}

// EditMode reports whether a record is under edit.
func (c *FormController[T]) EditMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// SetValue updates a single tracked field.
func (c *FormController[T]) SetValue(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
}

// Values returns a copy of the current field values.
func (c *FormController[T]) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// FieldErrors returns the per-field failure reasons from the last Submit,
// empty after a successful or not-yet-attempted submission.
func (c *FormController[T]) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		out[k] = v
	}
	return out
}

// Submit validates the current values and hands them to the submit
// coordinator. Validation failures annotate the offending fields and abort
// before any network call. On remote success in create mode the form is
// reset to defaults; in both modes the completion hook fires. On remote
// failure the session stays open for correction.
func (c *FormController[T]) Submit(ctx context.Context) Result[T] {
	c.mu.Lock()
	payload := c.values.Clone()
	current := c.current
	editMode := current != nil

	payload, fieldErrors := c.prepare(payload, editMode)
	if len(fieldErrors) > 0 {
		c.fieldErrors = fieldErrors
		c.mu.Unlock()
		return Result[T]{Err: &ValidationError{Fields: fieldErrors}}
	}
	c.fieldErrors = map[string]string{}
	c.mu.Unlock()

	result := Coordinate(ctx, payload, current,
		c.collab.Create,
		c.collab.Update,
		c.notifier,
	)
	if !result.OK() {
		return result
	}

	c.mu.Lock()
	if result.Created {
		c.values = c.defaults()
	}
	onComplete := c.onComplete
	c.mu.Unlock()

	if onComplete != nil {
		onComplete(result)
	}
	return result
}

// prepare applies the password transform, validates every field, and strips
// confirmation-only fields. It returns the submission payload and any
// per-field failure reasons.
func (c *FormController[T]) prepare(payload Values, editMode bool) (Values, map[string]string) {
	fieldErrors := map[string]string{}

	for _, f := range c.schema.Fields {
		value := payload[f.Name]

		if f.Password && editMode && isEmptyValue(value) {
			// Empty secret on edit means "leave unchanged".
			delete(payload, f.Name)
			continue
		}

		if f.ConfirmOf != "" {
			target, present := payload[f.ConfirmOf]
			if !present && isEmptyValue(value) {
				// The target was dropped by the password transform and
				// the confirmation is blank too: nothing to confirm.
				continue
			}
			if !present || value != target {
				fieldErrors[f.Name] = "must match " + f.ConfirmOf
			}
			continue
		}

		if f.Rules == "" {
			continue
		}
		if err := c.validate.Var(value, f.Rules); err != nil {
			fieldErrors[f.Name] = validationReason(err)
		}
	}

	for _, f := range c.schema.Fields {
		if f.ConfirmOf != "" {
			delete(payload, f.Name)
		}
	}

	return payload, fieldErrors
}

// defaults builds the create-mode value set.
func (c *FormController[T]) defaults() Values {
	values := make(Values, len(c.schema.Fields))
	for _, f := range c.schema.Fields {
		if f.Default != nil {
			values[f.Name] = f.Default
		} else {
			values[f.Name] = ""
		}
	}
	return values
}

// validationReason extracts a short failure reason from a validator error.
func validationReason(err error) string {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		fe := ve[0]
		if fe.Param() != "" {
			return fe.Tag() + "=" + fe.Param()
		}
		return fe.Tag()
	}
	return err.Error()
}

// isEmptyValue reports whether a field value counts as "not filled in".
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return fmt.Sprintf("%v", v) == ""
}
