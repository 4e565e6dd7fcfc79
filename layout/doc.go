// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package layout is the format-agnostic description of a component tree. A
// description is a tree of Elements; each Element names a component type and
// carries its raw string attributes, partitioned by namespace.
//
// # Namespaces
//
// The empty namespace addresses properties of the element's own component.
// ParentNamespace addresses properties that the element's container keeps
// about the element (alignment, expand ratio, position). Any other namespace
// is passed through untouched so that custom attribute handlers can claim it.
//
// # Formats
//
// Two concrete syntaxes are read into the same model:
//
//   - HCL, parsed with hashicorp/hcl. Plain attributes belong to the default
//     namespace, a `parent` block to ParentNamespace, and an
//     `attributes "<namespace>"` block to an arbitrary namespace. Children are
//     nested `component "<Type>"` blocks.
//
//   - YAML, parsed with yaml.v3 node trees so that key order and repeated
//     keys survive until the model decides which value wins.
//
// The model never interprets attribute values. Converting them into typed
// property values is the job of the parser and handler packages.
package layout
