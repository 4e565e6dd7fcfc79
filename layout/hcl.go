// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file reads the HCL syntax of a layout description:
//
//	component "VerticalLayout" {
//	  id       = "root"
//	  sizeFull = ""
//
//	  component "Button" {
//	    id      = "button"
//	    caption = "Click me"
//	    parent {
//	      componentAlignment = "middle_center"
//	    }
//	  }
//	}
//
// Attribute expressions are evaluated without variables or functions; their
// values must be primitive and are kept in their string form.
package layout

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

const (
	componentBlock  = "component"
	parentBlock     = "parent"
	attributesBlock = "attributes"
)

// ParseHCL reads a single-root description written in HCL.
func ParseHCL(src []byte, filename string) (*Element, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL layout %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse HCL layout %s: unexpected body type %T", filename, file.Body)
	}

	for _, attr := range body.Attributes {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected top-level attribute",
			Detail:   fmt.Sprintf("Attribute %q must be declared inside a \"component\" block.", attr.Name),
			Subject:  attr.SrcRange.Ptr(),
		})
	}

	var roots []*hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type != componentBlock {
			diags = append(diags, unexpectedBlock(block, componentBlock))
			continue
		}
		roots = append(roots, block)
	}
	if len(roots) != 1 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid layout root",
			Detail:   fmt.Sprintf("A layout must contain exactly one top-level \"component\" block, found %d.", len(roots)),
			Subject:  body.SrcRange.Ptr(),
		})
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL layout %s: %w", filename, diags)
	}

	root, diags := decodeComponent(roots[0])
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL layout %s: %w", filename, diags)
	}
	return root, nil
}

// decodeComponent converts a `component "<Type>"` block and its children.
func decodeComponent(block *hclsyntax.Block) (*Element, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if len(block.Labels) != 1 || block.Labels[0] == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing component type",
			Detail:   "A \"component\" block needs exactly one label naming the component type.",
			Subject:  block.DefRange().Ptr(),
		})
		return nil, diags
	}

	el := &Element{Type: block.Labels[0], Pos: posOf(block.DefRange())}

	attrs, attrDiags := decodeAttributes(block.Body, "")
	diags = append(diags, attrDiags...)
	el.Attributes = append(el.Attributes, attrs...)

	for _, nested := range block.Body.Blocks {
		switch nested.Type {
		case componentBlock:
			child, childDiags := decodeComponent(nested)
			diags = append(diags, childDiags...)
			if child != nil {
				el.Children = append(el.Children, child)
			}
		case parentBlock:
			if len(nested.Labels) != 0 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unexpected label",
					Detail:   "A \"parent\" block takes no labels.",
					Subject:  nested.DefRange().Ptr(),
				})
				continue
			}
			attrs, nsDiags := decodeNamespaceBlock(nested, ParentNamespace)
			diags = append(diags, nsDiags...)
			el.Attributes = append(el.Attributes, attrs...)
		case attributesBlock:
			if len(nested.Labels) != 1 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing namespace",
					Detail:   "An \"attributes\" block needs exactly one label naming the namespace.",
					Subject:  nested.DefRange().Ptr(),
				})
				continue
			}
			attrs, nsDiags := decodeNamespaceBlock(nested, nested.Labels[0])
			diags = append(diags, nsDiags...)
			el.Attributes = append(el.Attributes, attrs...)
		default:
			diags = append(diags, unexpectedBlock(nested, componentBlock, parentBlock, attributesBlock))
		}
	}
	return el, diags
}

func decodeNamespaceBlock(block *hclsyntax.Block, namespace string) (Attributes, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	for _, nested := range block.Body.Blocks {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected block",
			Detail:   fmt.Sprintf("Blocks are not allowed inside %q.", block.Type),
			Subject:  nested.DefRange().Ptr(),
		})
	}
	attrs, attrDiags := decodeAttributes(block.Body, namespace)
	return attrs, append(diags, attrDiags...)
}

// decodeAttributes evaluates every attribute of body in source order.
func decodeAttributes(body *hclsyntax.Body, namespace string) (Attributes, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	ordered := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SrcRange.Start.Byte < ordered[j].SrcRange.Start.Byte
	})

	out := make(Attributes, 0, len(ordered))
	for _, attr := range ordered {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		raw, err := stringValue(val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid attribute value",
				Detail:   fmt.Sprintf("Attribute %q: %s.", attr.Name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		out = append(out, Attribute{Namespace: namespace, Name: attr.Name, Value: raw})
	}
	return out, diags
}

// stringValue renders a primitive cty value the way it was written.
func stringValue(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	if !val.Type().IsPrimitiveType() {
		return "", fmt.Errorf("expected a string, number or bool, got %s", val.Type().FriendlyName())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return str.AsString(), nil
}

func unexpectedBlock(block *hclsyntax.Block, allowed ...string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported block type",
		Detail:   fmt.Sprintf("Blocks of type %q are not expected here; allowed: %q.", block.Type, allowed),
		Subject:  block.DefRange().Ptr(),
	}
}

func posOf(r hcl.Range) Pos {
	return Pos{Filename: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}
