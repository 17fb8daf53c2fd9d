package jsonbound

// Package jsonbound turns untyped JSON-like value trees into strongly
// typed values at trust boundaries (HTTP responses, user input,
// persisted blobs), rejecting anything that does not match the expected
// shape and reporting precisely where and why a mismatch occurred.
//
// It provides:
//
//   - An immutable Decoder[T] value describing one decoding step
//   - Combinators to build decoders (Field/At, Object/Instance, Many,
//     Dict, Map, AndThen, OneOf, Optional, Lazy, Succeed, Fail)
//   - Outside-in error messages that keep the nesting context of a
//     failure (field names, array indexes, aggregated alternatives)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place wire-format decoders under codec/, YAML entry points under yaml/, and the CLI under cmd/jsonbound.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := jsonbound.Instance(func() *User { return &User{} },
//		jsonbound.Bind("name", jsonbound.Field("name", jsonbound.String()), func(u *User, s string) { u.Name = s }),
//		jsonbound.Bind("age", jsonbound.OptionalField("age", 0, jsonbound.Integer()), func(u *User, n int) { u.Age = n }),
//	)
//	u, err := jsonbound.DecodeString(user, body)
//
// Decoders are immutable and stateless: build them once at program
// initialization and reuse them for the program's lifetime, from any
// number of goroutines.
