// Package cli holds the recipe-finder command tree: the window launcher,
// the headless search command and version reporting. Flags, environment
// variables with the RECIPE_FINDER_ prefix and an optional YAML file are
// merged with viper.
package cli
