// Package enum provides a pflag value restricted to a fixed set of strings.
package enum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

const flagType = "enum"

type value struct {
	current string
	allowed []string
}

func (v *value) String() string { return v.current }

func (v *value) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(v.allowed, "|"))
	}
	v.current = s
	return nil
}

func (v *value) Type() string { return flagType }

// Var defines an enum flag. The first allowed value is the default.
func Var(f *pflag.FlagSet, name string, allowed []string, usage string) {
	VarP(f, name, "", allowed, usage)
}

// VarP is like Var, but accepts a shorthand letter.
func VarP(f *pflag.FlagSet, name, shorthand string, allowed []string, usage string) {
	if len(allowed) == 0 {
		panic(fmt.Sprintf("enum flag %q needs at least one allowed value", name))
	}
	f.VarP(&value{current: allowed[0], allowed: allowed}, name, shorthand,
		fmt.Sprintf("%s {%s}", usage, strings.Join(allowed, "|")))
}

// Get returns the value of the enum flag name.
func Get(f *pflag.FlagSet, name string) (string, error) {
	flag := f.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag accessed but not defined: %s", name)
	}
	if flag.Value.Type() != flagType {
		return "", fmt.Errorf("trying to get %s value of flag of type %s", flagType, flag.Value.Type())
	}
	return flag.Value.String(), nil
}
