// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// inheritFrom sets each unset field of s using the corresponding
// field of the parent settings. Parent context key values come first.
func (s *settings) inheritFrom(parent settings) {
	if s.writer == nil {
		s.writer = parent.writer
	}

	if s.level == nil && parent.level != nil {
		value := *parent.level
		s.level = &value
	}

	s.caller.inheritFrom(parent.caller)

	var context []contextKeyValues
	for _, kv := range parent.context {
		context = appendContext(context, kv)
	}
	for _, kv := range s.context {
		context = appendContext(context, kv)
	}
	s.context = context
}

// overrideWith sets every field of other that is set onto s.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		s.context = appendContext(s.context, kv)
	}
}

func appendContext(context []contextKeyValues, kv contextKeyValues) []contextKeyValues {
	for i := range context {
		if context[i].key == kv.key {
			context[i].values = append(context[i].values, kv.values...)
			return context
		}
	}
	return append(context, contextKeyValues{
		key:    kv.key,
		values: append([]string(nil), kv.values...),
	})
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	s.caller.setDefaults()
}
