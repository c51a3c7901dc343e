package errors

import "fmt"

// Common error messages for the propworld CLI.
// These templates ensure consistent, actionable error messages.

// WorldFileNotFound creates an error for a missing world YAML file.
func WorldFileNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("world file not found: %s", path),
		"Check that the path is correct",
		"Create a world file with entities, props, and links sections",
	)
}

// WorldParseError creates an error for an invalid world YAML file.
func WorldParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse world file: %s", path),
		"Check the file for YAML syntax errors",
		"Run 'propworld world lint "+path+"' for field-level diagnostics",
	)
}

// ChangelogNotFound creates an error for a missing changelog source.
func ChangelogNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog not found: %s", path),
		"Check that the path is correct",
		"Use 'propworld changelog show' to display the built-in changelog",
	)
}

// ChangelogParseError creates an error for an invalid changelog source.
func ChangelogParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse changelog: %s", path),
		"Check the file for YAML syntax errors",
		"Each released version needs a semver identifier, a date, and at least one entry",
	)
}

// EntityNotFound creates an error when a named entity doesn't exist.
func EntityNotFound(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no entity named %q", name),
		"Entity names are case-sensitive",
		"List entities with: propworld world query <file> --list",
	)
}

// InvalidQueryPath creates an error for a malformed query expression.
func InvalidQueryPath(expr string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid query path: %s", expr),
		"propworld world query <file> \"entity->link->link.prop\"",
		"Separate link hops with '->' and end with '.prop' to read a property",
		"Example: propworld world query world.yml \"gandalf->ally.age\"",
	)
}

// ConfigFileNotFound creates an error for a missing config file.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Create .propworld/config.yml in your project",
		"Or pass --config with an explicit path",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML or JSON syntax errors",
		"Remove the file to fall back to defaults",
	)
}
