// Package config loads strfind's layered configuration.
//
// Sources are merged lowest to highest:
//
//  1. the defaults embedded in the binary (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/strfind/config.toml
//  3. the project file, .strfind.toml in the working directory
//  4. a file named explicitly with --config
//  5. STRFIND_* environment variables (STRFIND_SEARCH_REGEX=true sets search.regex)
//  6. flags set on the command line
//
// Missing user and project files are skipped; a missing explicit file is
// an error.
package config
