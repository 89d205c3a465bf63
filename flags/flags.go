// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"gopkg.microglot.org/containers.go/optional"
)

// Value adapts a bound Optional to the pflag.Value interface so a command
// line can distinguish a flag that was never given from one given with the
// zero value. The bound Optional stays absent until Set runs.
type Value[T any] struct {
	opt      *optional.Optional[T]
	typeName string
	parse    func(string) (T, error)
}

// NewValue binds opt to a pflag.Value that reads raw flag input with parse.
// The typeName is what pflag prints as the flag's type in usage text.
func NewValue[T any](opt *optional.Optional[T], typeName string, parse func(string) (T, error)) *Value[T] {
	return &Value[T]{
		opt:      opt,
		typeName: typeName,
		parse:    parse,
	}
}

func (self *Value[T]) Set(raw string) error {
	v, err := self.parse(raw)
	if err != nil {
		return err
	}
	*self.opt = optional.Some(v)
	return nil
}

func (self *Value[T]) String() string {
	if self.opt == nil || self.opt.IsAbsent() {
		return ""
	}
	return fmt.Sprint(self.opt.Value())
}

func (self *Value[T]) Type() string {
	return self.typeName
}

// Var registers a flag bound to opt on fs. The flag accepts any input parse
// accepts.
func Var[T any](fs *pflag.FlagSet, opt *optional.Optional[T], name string, usage string, typeName string, parse func(string) (T, error)) {
	fs.Var(NewValue(opt, typeName, parse), name, usage)
}

// StringVar registers a string flag whose absence is observable on opt.
func StringVar(fs *pflag.FlagSet, opt *optional.Optional[string], name string, usage string) {
	Var(fs, opt, name, usage, "string", func(raw string) (string, error) {
		return raw, nil
	})
}

// IntVar registers an int flag whose absence is observable on opt.
func IntVar(fs *pflag.FlagSet, opt *optional.Optional[int], name string, usage string) {
	Var(fs, opt, name, usage, "int", strconv.Atoi)
}

// DurationVar registers a time.Duration flag whose absence is observable on
// opt.
func DurationVar(fs *pflag.FlagSet, opt *optional.Optional[time.Duration], name string, usage string) {
	Var(fs, opt, name, usage, "duration", time.ParseDuration)
}
