package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	listFlagTypeName  = "strings"
	listFlagSeparator = ","
)

// listFlagMark records that a list flag was set after position positionals had been parsed.
type listFlagMark struct {
	position int
	target   *[]string
}

// listFlagGroup tracks the list flags of one flag set so that names written after a list
// flag, space separated, can be attributed to it once parsing is done:
//
//	projsnap . --exclude-files go.sum LICENSE --exclude-dirs vendor dist
type listFlagGroup struct {
	flagSet *pflag.FlagSet
	marks   []listFlagMark
}

func newListFlagGroup(flagSet *pflag.FlagSet) *listFlagGroup {
	return &listFlagGroup{flagSet: flagSet}
}

// listFlagValue is a string list flag accepting repeated flags and comma separated values.
type listFlagValue struct {
	group   *listFlagGroup
	target  *[]string
	changed bool
}

func (value *listFlagValue) Set(input string) error {
	names := splitListFlagValue(input)
	if !value.changed {
		*value.target = names
		value.changed = true
	} else {
		*value.target = append(*value.target, names...)
	}
	value.group.marks = append(value.group.marks, listFlagMark{
		position: len(value.group.flagSet.Args()),
		target:   value.target,
	})
	return nil
}

func (value *listFlagValue) String() string {
	if value == nil || value.target == nil {
		return "[]"
	}
	return "[" + strings.Join(*value.target, listFlagSeparator) + "]"
}

func (value *listFlagValue) Type() string {
	return listFlagTypeName
}

func (group *listFlagGroup) register(target *[]string, name string, usage string) {
	group.flagSet.Var(&listFlagValue{group: group, target: target}, name, usage)
}

// fold moves every positional after the first that follows a list flag into that flag's
// list. The first positional is always the project path. The remaining positionals are
// returned.
func (group *listFlagGroup) fold(positionals []string) []string {
	if len(positionals) == 0 {
		return positionals
	}
	dashPosition := group.flagSet.ArgsLenAtDash()
	remaining := []string{positionals[0]}
	for index := 1; index < len(positionals); index++ {
		target := group.targetAt(index)
		if target == nil || (dashPosition >= 0 && index >= dashPosition) {
			remaining = append(remaining, positionals[index])
			continue
		}
		*target = append(*target, splitListFlagValue(positionals[index])...)
	}
	return remaining
}

// targetAt returns the list of the last flag set before the positional at index.
func (group *listFlagGroup) targetAt(index int) *[]string {
	var target *[]string
	for _, mark := range group.marks {
		if mark.position <= index {
			target = mark.target
		}
	}
	return target
}

// foldedArgs validates the positionals left after folding: at most one project path.
func (group *listFlagGroup) foldedArgs(command *cobra.Command, arguments []string) ([]string, error) {
	remaining := group.fold(arguments)
	if validationError := cobra.MaximumNArgs(1)(command, remaining); validationError != nil {
		return nil, validationError
	}
	return remaining, nil
}

func splitListFlagValue(input string) []string {
	parts := strings.Split(input, listFlagSeparator)
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
