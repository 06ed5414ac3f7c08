// Package yatgtypes holds the strongly typed Bot API object graph produced by
// yatgdecoder.
//
// Optional wire fields are pointers (or nil slices for lists), so "absent"
// and "zero" never collide. An absent list is nil; a list present on the
// wire but empty is a non-nil empty slice.
//
// Values are built once by the decoder and are not mutated afterwards.
package yatgtypes
