package schema

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"chat-xml/errors"

	"github.com/beevik/etree"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Validator checks a whole data document against the fixed schema.
// It keeps no state between calls and never mutates the document.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		parts := strings.Split(field.Tag.Get("xml"), ",")
		if parts[0] == "" || parts[0] == "-" {
			return field.Name
		}
		if len(parts) > 1 && parts[1] == "attr" {
			return "@" + parts[0]
		}
		return parts[0]
	})
	_ = v.RegisterValidation(xmlTextTag, validXMLText)
	return &Validator{validate: v}
}

// Validate reports whether doc satisfies the schema, with every violation found.
func (v *Validator) Validate(doc *etree.Document) (bool, []string) {
	var violations []string
	report := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	root := doc.Root()
	if root == nil {
		return false, []string{"document has no root element"}
	}
	if root.Tag != RootTag || root.NamespaceURI() != Namespace {
		report("root element must be %s in namespace %s, got %s", RootTag, Namespace, describe(root))
		return false, violations
	}

	seen := make(map[string]int)
	for _, c := range root.ChildElements() {
		if c.NamespaceURI() != Namespace || !isSection(c.Tag) {
			report("unexpected element %s under %s", describe(c), RootTag)
			continue
		}
		seen[c.Tag]++
		if seen[c.Tag] > 1 {
			report("duplicate container element %s", c.Tag)
			continue
		}
		violations = append(violations, v.validateSection(c)...)
	}
	for _, section := range Sections {
		if seen[section.Container] == 0 {
			report("missing required child element %s under %s", section.Container, RootTag)
		}
	}
	return len(violations) == 0, violations
}

// Check is Validate returning an *errors.SchemaError on failure.
func (v *Validator) Check(doc *etree.Document) error {
	if ok, violations := v.Validate(doc); !ok {
		return &errors.SchemaError{Violations: violations}
	}
	return nil
}

func (v *Validator) validateSection(container *etree.Element) []string {
	var violations []string
	expected := sectionElement(container.Tag)
	ids := make(map[string]struct{})

	for _, el := range container.ChildElements() {
		if el.NamespaceURI() != Namespace || el.Tag != expected {
			violations = append(violations, fmt.Sprintf("unexpected element %s under %s", describe(el), container.Tag))
			continue
		}
		path := entityPath(el)
		if id := el.SelectAttrValue(IDAttr, ""); id != "" {
			if _, dup := ids[id]; dup {
				violations = append(violations, fmt.Sprintf("%s: duplicate id within %s", path, container.Tag))
			}
			ids[id] = struct{}{}
		}
		violations = append(violations, structure(el, path)...)
		violations = append(violations, v.rules(decodeRecord(el), path)...)
	}
	return violations
}

// structure checks the element names below an entity; record rules cover the values.
func structure(el *etree.Element, path string) []string {
	var violations []string
	allowed := allowedChildren[el.Tag]
	counts := make(map[string]int)
	for _, c := range el.ChildElements() {
		if c.NamespaceURI() != Namespace || !lo.Contains(allowed, c.Tag) {
			violations = append(violations, fmt.Sprintf("%s: unexpected child element %s", path, describe(c)))
			continue
		}
		counts[c.Tag]++
		if counts[c.Tag] == 2 {
			violations = append(violations, fmt.Sprintf("%s: child element %s appears more than once", path, c.Tag))
		}
		if item, ok := repeated[c.Tag]; ok {
			for _, entry := range c.ChildElements() {
				if entry.NamespaceURI() != Namespace || entry.Tag != item {
					violations = append(violations, fmt.Sprintf("%s: unexpected element %s in %s", path, describe(entry), c.Tag))
				}
			}
		}
	}
	return violations
}

func (v *Validator) rules(record any, path string) []string {
	if record == nil {
		return nil
	}
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return []string{fmt.Sprintf("%s: %v", path, err)}
	}
	var violations []string
	recipientReported := false
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required_without", "excluded_with":
			if recipientReported {
				continue
			}
			recipientReported = true
			violations = append(violations, fmt.Sprintf("%s: exactly one of to_user or to_group is required", path))
		default:
			violations = append(violations, fmt.Sprintf("%s: %s", path, explain(fe)))
		}
	}
	return violations
}

func explain(fe validator.FieldError) string {
	name, isAttr := strings.CutPrefix(fe.Field(), "@")
	switch fe.Tag() {
	case "required":
		if isAttr {
			return "missing required attribute " + name
		}
		return "missing required child element " + name
	case "min":
		return fmt.Sprintf("empty container is not allowed, at least %s %s element required", fe.Param(), name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	case "datetime":
		return fmt.Sprintf("%s must be an RFC 3339 timestamp, got %q", name, fe.Value())
	case xmlTextTag:
		return fmt.Sprintf("%s holds characters that cannot be stored in XML", name)
	case "unique":
		return fmt.Sprintf("%s elements must have unique %s", name, uniqueKeys[fe.Param()])
	default:
		return fmt.Sprintf("%s fails rule %s", name, fe.Tag())
	}
}

var uniqueKeys = map[string]string{
	"Key":    KeyAttr,
	"UserID": UserIDAttr,
}

func describe(el *etree.Element) string {
	if uri := el.NamespaceURI(); uri != Namespace {
		return fmt.Sprintf("{%s}%s", uri, el.Tag)
	}
	return el.Tag
}

func entityPath(el *etree.Element) string {
	return fmt.Sprintf("%s[id=%s]", el.Tag, el.SelectAttrValue(IDAttr, ""))
}

func isSection(tag string) bool {
	return sectionElement(tag) != ""
}

func sectionElement(container string) string {
	for _, s := range Sections {
		if s.Container == container {
			return s.Element
		}
	}
	return ""
}
