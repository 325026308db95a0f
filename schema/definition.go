package schema

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// Definition is the part of the published XSD the compiled rules depend on.
type Definition struct {
	TargetNamespace string
	Root            string
	Containers      []string
}

// LoadDefinition reads an XSD file and extracts its target namespace, root element
// and top-level containers.
func LoadDefinition(path string) (Definition, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return Definition{}, fmt.Errorf("read schema %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "schema" {
		return Definition{}, fmt.Errorf("read schema %s: no xs:schema root", path)
	}
	def := Definition{TargetNamespace: root.SelectAttrValue("targetNamespace", "")}
	top := root.SelectElement("element")
	if top == nil {
		return def, fmt.Errorf("read schema %s: no top-level element", path)
	}
	def.Root = top.SelectAttrValue("name", "")
	for _, el := range top.FindElements("complexType/sequence/element") {
		def.Containers = append(def.Containers, el.SelectAttrValue("name", ""))
	}
	return def, nil
}

// Matches returns an error when the definition disagrees with the compiled layout.
func (d Definition) Matches() error {
	if d.TargetNamespace != Namespace {
		return fmt.Errorf("schema namespace %q, expected %q", d.TargetNamespace, Namespace)
	}
	if d.Root != RootTag {
		return fmt.Errorf("schema root element %q, expected %q", d.Root, RootTag)
	}
	expected := lo.Map(Sections, func(s Section, _ int) string { return s.Container })
	if !lo.Every(d.Containers, expected) || len(d.Containers) != len(expected) {
		return fmt.Errorf("schema containers %v, expected %v", d.Containers, expected)
	}
	return nil
}
