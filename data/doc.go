// Package data defines the data-bearing shapes a controller can hand to a
// component: a single value holder (Property), a record of named properties
// (Item) and an ordered set of records (Collection).
//
// Components that can display one of these shapes implement the matching
// viewer interface (PropertyViewer, ItemViewer, CollectionViewer). The binder
// relies on exactly these interfaces when it installs a data source.
package data
