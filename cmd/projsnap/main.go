package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/projsnap/internal/cli"
	"github.com/temirov/projsnap/internal/commands"
	"github.com/temirov/projsnap/internal/utils"
)

const invalidRootMessageFormat = "Error: %s.\n"

// main is the entry point for the projsnap command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger("")
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() { _ = loggerInstance.Sync() }()
	applicationExecutionError := cli.Execute(loggerInstance)
	if applicationExecutionError == nil {
		return
	}
	var invalidRootError commands.InvalidRootError
	if errors.As(applicationExecutionError, &invalidRootError) {
		fmt.Fprintf(os.Stderr, invalidRootMessageFormat, invalidRootError.Error())
		os.Exit(1)
	}
	loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
}
