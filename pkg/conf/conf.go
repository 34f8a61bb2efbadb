// Package conf is a helper for SynthoML configuration for both the command
// line interface and environment variables. It gives the ability to register
// arguments which will be fetched from CLI input OR an environment variable
// with the SYNTHOML_ prefix (--model_path or SYNTHOML_MODEL_PATH).
//
// By default it registers:
// <SYNTHOML_LOG> -l --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// When ParseEnv is executed, only the environment arguments are parsed.
// When ParseFlags is executed, arguments from both CLI and env are parsed;
// with --help it prints the whole overview of the configuration.
package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// envPrefix is prepended to uppercased flag names to build the environment
// variable name.
const envPrefix = "SYNTHOML"

// EnvironmentPrefix marks environment variables owned by SynthoML.
const EnvironmentPrefix = envPrefix + "_"

var (
	app = kingpin.New("synthoml", "No help available")

	logLevelFlag = NewStringFlag(
		"log",
		"Log level for SynthoML: debug, info, warn, error, fatal, panic",
		"error",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets the application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns the specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns the configured log level from the input option or env
// variable, falling back to the default when it cannot be parsed.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses both the command line flags of the process and the
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse command line flags")
}

// ParseEnv parses only the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse environment flags")
}

// DumpConfig dumps the environment based configuration with the current
// values of all flags, as a sourceable shell snippet.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps the environment based configuration with current
// values overwritten by the given flagMap.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export all values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, flag := range app.Model().Flags {
		// Skip kingpin builtin flags that aren't compatible with
		// environment based configuration.
		if strings.Contains(flag.Name, "-") {
			continue
		}

		fmt.Fprintf(buffer, "\n# %s\n", flag.Help)
		if len(flag.Default) > 0 {
			fmt.Fprintf(buffer, "# Default: %s\n", strings.Join(flag.Default, ","))
		}

		value := flag.Value.String()
		if mapValue, ok := flagMap[flag.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", envPrefix, strings.ToUpper(flag.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns all registered flags as a map with their current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range app.Model().Flags {
		if strings.Contains(flag.Name, "-") {
			continue
		}
		flagsMap[flag.Name] = flag.Value.String()
	}
	return flagsMap
}
