package cli

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{name: "defaults_to_false", arguments: []string{}, expected: false},
		{name: "sets_true_without_value", arguments: []string{"--feature"}, expected: true},
		{name: "sets_false_with_equals", arguments: []string{"--feature=false"}, expected: false},
		{name: "sets_false_with_no_literal", arguments: []string{"--feature=no"}, expected: false},
		{name: "sets_true_with_on_literal", arguments: []string{"--feature=ON"}, expected: true},
		{name: "rejects_unknown_literal", arguments: []string{"--feature=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flagSet.SetOutput(io.Discard)
			var target bool
			registerBooleanFlag(flagSet, &target, "feature", "feature toggle")

			err := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected parse error for %v", testCase.arguments)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if target != testCase.expected {
				t.Fatalf("expected %v, got %v", testCase.expected, target)
			}
		})
	}
}
