// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file reads the YAML syntax of a layout description:
//
//	type: VerticalLayout
//	attributes:
//	  id: root
//	  sizeFull: ""
//	children:
//	  - type: Button
//	    attributes:
//	      id: button
//	      caption: Click me
//	    parent:
//	      componentAlignment: middle_center
//	    namespaces:
//	      "urn:example:audit":
//	        tag: primary
//
// The document is decoded into a yaml.Node tree rather than Go maps so that
// attribute order and repeated keys reach the model intact.
package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a single-root description written in YAML.
func ParseYAML(src []byte, filename string) (*Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML layout %s: %w", filename, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("invalid YAML layout %s: expected a single document", filename)
	}
	return decodeYAMLElement(doc.Content[0], filename)
}

func decodeYAMLElement(node *yaml.Node, filename string) (*Element, error) {
	pos := Pos{Filename: filename, Line: node.Line, Column: node.Column}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: a component must be a mapping", pos)
	}

	el := &Element{Pos: pos}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type":
			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return nil, fmt.Errorf("%s: \"type\" must be a non-empty string", pos)
			}
			el.Type = value.Value
		case "attributes":
			attrs, err := decodeYAMLAttributes(value, "", filename)
			if err != nil {
				return nil, err
			}
			el.Attributes = append(el.Attributes, attrs...)
		case "parent":
			attrs, err := decodeYAMLAttributes(value, ParentNamespace, filename)
			if err != nil {
				return nil, err
			}
			el.Attributes = append(el.Attributes, attrs...)
		case "namespaces":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%s: \"namespaces\" must be a mapping", posOfNode(value, filename))
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				attrs, err := decodeYAMLAttributes(value.Content[j+1], value.Content[j].Value, filename)
				if err != nil {
					return nil, err
				}
				el.Attributes = append(el.Attributes, attrs...)
			}
		case "children":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%s: \"children\" must be a sequence", posOfNode(value, filename))
			}
			for _, item := range value.Content {
				child, err := decodeYAMLElement(item, filename)
				if err != nil {
					return nil, err
				}
				el.Children = append(el.Children, child)
			}
		default:
			return nil, fmt.Errorf("%s: unexpected key %q", posOfNode(key, filename), key.Value)
		}
	}
	if el.Type == "" {
		return nil, fmt.Errorf("%s: component is missing \"type\"", pos)
	}
	return el, nil
}

func decodeYAMLAttributes(node *yaml.Node, namespace, filename string) (Attributes, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: attributes must be a mapping", posOfNode(node, filename))
	}
	out := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: attribute %q must be a scalar", posOfNode(value, filename), key.Value)
		}
		raw := value.Value
		if value.Tag == "!!null" {
			raw = ""
		}
		out = append(out, Attribute{Namespace: namespace, Name: key.Value, Value: raw})
	}
	return out, nil
}

func posOfNode(node *yaml.Node, filename string) Pos {
	return Pos{Filename: filename, Line: node.Line, Column: node.Column}
}
